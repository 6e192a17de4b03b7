// Package cli implements the usermanager command line: a scripted
// demonstration of the registry and an interactive REPL.
//
// REPL commands:
//
//	help                          show available commands
//	add <username> <email> <age>  register a user
//	find <username>               show a user
//	remove | rm <username>        delete a user
//	list | l                      list all users
//	stats                         show registry metrics
//	demo                          run the demonstration scenario
//	exit | quit                   leave the program
//
// Domain errors are printed and never end the session. Cancelling the
// session context (SIGINT, SIGTERM) ends it before the next command.
package cli
