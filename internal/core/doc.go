// Package core provides deck file operations for the flashcard server.
//
// It sits between the transports (HTTP handlers, CLI) and the pure
// [flashcard] codec, and owns everything that touches disk or the database.
//
// # Decks
//
// A deck is a .csv file directly inside the data directory. [DeckStore]
// resolves every name against that directory and rejects anything that could
// escape it: path separators, "..", absolute paths and symlinks pointing
// outside. Writes go through a temp file and rename so readers never see a
// half-written deck.
//
// # Service
//
// [Service] is the entry point:
//
//	svc := core.NewService(cfg, history)
//	names, _ := svc.ListDecks(ctx)
//	cards, err := svc.LoadDeck(ctx, "spanish.csv")
//	res, err := svc.SaveUpload(ctx, "spanish.csv", file)
//
// Every deck, from disk or upload, passes through [BOMSkippingReader] and a
// size limit, then must be valid UTF-8 before it reaches the parser. Uploads
// are parsed in full before anything is written; a rejected upload leaves no
// trace on disk or in history.
//
// # Concurrency
//
// [UploadLimiter] bounds concurrent uploads. Requests that cannot get a slot
// within the configured wait fail with [ErrTooManyUploads].
// [Service.WaitForUploads] lets shutdown drain in-flight uploads.
//
// # History
//
// Accepted uploads are recorded in a [HistoryStore]: [PostgresHistory] when
// a database is configured (schema applied by [Migrate]), otherwise
// [MemoryHistory]. [Service.StartHistoryPruner] deletes old records.
//
// # Errors
//
// Errors wrap the sentinels in errors.go and the parser's kinds.
// [MapError] turns any of them into a [UserMessage] with a support code.
package core
