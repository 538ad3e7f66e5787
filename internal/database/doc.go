// Package database provides database connectivity for the Hunter API.
//
// The database package abstracts SurrealDB operations and provides
// a consistent interface for data access across the application.
//
// # Database Interface
//
// The Database interface defines core operations:
//
//	type Database interface {
//	    Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)
//	    QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)
//	    Execute(ctx context.Context, query string, vars map[string]interface{}) error
//	    Close() error
//	}
//
// # Connection Management
//
// Connect to SurrealDB:
//
//	db := database.NewSurrealDB(database.Config{
//	    Host:      "localhost",
//	    Port:      "8000",
//	    Namespace: "hunter",
//	    Database:  "main",
//	    User:      "root",
//	    Password:  "secret",
//	})
//	err := db.Connect(ctx)
//
// # Error Types
//
// Standard error types for data operations:
//
//   - ErrNotFound: Record does not exist
//   - ErrDuplicate: Unique constraint violation
//   - ErrConnection: Database connection failed
//
// # Atomic Batches
//
// SurrealDB's websocket driver has no connection-level transactions, so
// writes that must land together (both duelists after a PVP fight) are
// accumulated in a TxBuilder and sent as one BEGIN/COMMIT batch:
//
//	tb := database.NewTxBuilder()
//	tb.Add("UPDATE $id SET rating = $rating", vars)
//	results, err := database.ExecuteTransaction(ctx, db, tb)
package database
