// Package github provides a typed client for the GitHub GraphQL API.
//
// The client speaks to a single GraphQL endpoint with bearer-token
// authentication and exposes the four operations the sync workflow needs:
//
//   - ResolveRepositoryID: repository node id by (owner, name)
//   - FindProjectID: Project (V2) node id by name filter, first match only
//   - CreateIssue: create an issue in a repository
//   - AddProjectItem: attach a content node (issue) to a project
//
// Every response is decoded into an explicit per-operation schema; a missing
// field in a well-formed response fails with a named error kind rather than a
// catch-all. Errors are typed *apihttp.Error values so callers can branch on
// the taxonomy with errors.Is.
package github
