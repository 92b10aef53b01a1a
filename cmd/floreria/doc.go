// Package main provides the floreria CLI.
//
//	floreria serve            # start the web server
//	floreria init-db          # create schema, admin user and starter catalog
//	floreria migrate          # run pending migrations
//	floreria migrate:rollback # undo the last batch
//	floreria migrate:status   # show migration state
//	floreria seed             # run seeders alone
//	floreria route:list       # print the route table
//
// Configuration comes from config/app.json, .env and the process
// environment, in increasing order of precedence.
package main
