// Package api exposes the meeting analysis workflow as services returning
// transport-friendly DTOs consumed by the CLI.
package api
