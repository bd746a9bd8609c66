// Package api serves plan generation and stored plans over HTTP.
//
// # Routes
//
//	GET    /healthz
//	POST   /api/v1/plans                       generate and store a plan
//	GET    /api/v1/plans                       list stored plans
//	GET    /api/v1/plans/{id}                  plan JSON
//	DELETE /api/v1/plans/{id}
//	GET    /api/v1/plans/{id}/adjacency.svg    room adjacency diagram
//	GET    /api/v1/plans/{id}/adjacency.dot
//	GET    /api/v1/plans/{id}/schedule.xlsx    room, opening and furniture schedule
//	GET    /api/v1/catalog
//	GET    /api/v1/styles
//
// # Errors
//
// Failures are JSON bodies of the form {"code": "...", "message": "..."}.
// Invalid input maps to 400, missing plans to 404 and everything else
// to 500.
package api
