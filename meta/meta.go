// meta/meta.go
package meta

// BOARD_ROWS defines the default number of board rows.
const BOARD_ROWS = 6

// BOARD_COLS defines the default number of board columns.
const BOARD_COLS = 6

// FLEET_SIZE defines the default maximum number of ships per fleet.
const FLEET_SIZE = 5

// FLEET_FILE defines the default fleet definition resource.
const FLEET_FILE = "ships.txt"

// GAMES defines the number of games per experiment batch.
const GAMES = 30

// MAX_TURNS caps a single game; both boards fully fired is well below it.
const MAX_TURNS = 2 * BOARD_ROWS * BOARD_COLS * 4

// PLACEMENT_ATTEMPTS caps random placement retries for a single ship.
const PLACEMENT_ATTEMPTS = 1000
