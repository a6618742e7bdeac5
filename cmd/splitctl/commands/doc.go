// Package commands implements the splitctl command line: schema
// migrations, demo data and JSON dumps of balances and chat context,
// all against the same database the API server uses.
package commands
