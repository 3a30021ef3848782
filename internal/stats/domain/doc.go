// Package domain defines the game statistics entities: servers, players and the matches
// played between them.
package domain
