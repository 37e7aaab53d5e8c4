// Package services implements the business logic layer between the HTTP
// handlers and the ingestion pipeline. The dashboard service owns the
// pipeline run: it materializes the three raw exports, aggregates them into
// the ledger, derives the member and property views, and holds the finished
// model in memory for readers. Handlers never touch the pipeline stages
// directly.
package services
