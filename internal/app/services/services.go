// Package services implements the business rules for every API operation.
//
// Services defined in this package:
// - AuthService: registration, login and bearer-token resolution
// - AlumniService: alumni profile CRUD and search
// - EventService: event CRUD
// - JobService: job posting CRUD
// - DonationService: donation recording and reporting (append-only)
// - PostService: feed post CRUD
// - MessageService: direct messages (append-only)
package services
