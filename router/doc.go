// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Calendar API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Calendar reads (public):

	GET /period/{period}         - Days for a period expression
	GET /external/period/{year}  - Year fetched from external providers

Calendar writes (require Authentication: Bearer <token>):

	POST   /date         - Create one day
	PUT    /date/{date}  - Replace one day
	DELETE /date/{date}  - Delete one day
	POST   /calendar     - Bulk upsert

# Handler Initialization

The router creates handler instances with dependency injection:

	dayHandler := handlers.NewDayHandler(db, cfg)
	periodHandler := handlers.NewPeriodHandler(db, cfg)
	importHandler := handlers.NewImportHandler(db, cfg)
	externalHandler := handlers.NewExternalHandler(db, client, cfg)

All handlers receive the database connection and configuration; the
external handler also receives the provider client.
*/
package router
