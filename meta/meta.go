// meta/meta.go
package meta

// MAX_ATTEMPTS_PER_TRIAL bounds how many samples a search may draw per trial
// before giving up on a board with no legal move.
const MAX_ATTEMPTS_PER_TRIAL = 1000

// MAX_DEPTH_LIMIT is the deepest board supported. A flattened board holds
// 4^max_depth cells.
const MAX_DEPTH_LIMIT = 12

// MAX_DEPTH is the default depth limit of generated boards.
const MAX_DEPTH = 4

// BOARD_SIZE is the default side length of the board in pixels.
const BOARD_SIZE = 750

// MAX_TURNS is the default number of rounds in a game.
const MAX_TURNS = 10

// GAMES is the default number of games run by an experiment.
const GAMES = 30

// WORKERS is the default number of games run at once.
const WORKERS = 8
