package github

import "encoding/json"

// GitHub GraphQL API wire types.
// See: https://docs.github.com/en/graphql

// graphQLRequest is the request body for every GraphQL call.
type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// graphQLResponse is the top-level response envelope. Data is decoded per
// operation; Errors is the response-level error array, which can be present
// even on an HTTP 200.
type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

// GraphQLError is a single entry in a GraphQL error array.
type GraphQLError struct {
	Type    string   `json:"type,omitempty"`
	Message string   `json:"message"`
	Path    []string `json:"path,omitempty"`
}

// repositoryQueryData is the schema for the repository-id query.
// Repository is a pointer: GitHub returns null for repositories that do not
// exist or that the token cannot see.
type repositoryQueryData struct {
	Repository *struct {
		ID string `json:"id"`
	} `json:"repository"`
}

// projectsQueryData is the schema for the name-filtered ProjectsV2 query.
type projectsQueryData struct {
	Repository *struct {
		ProjectsV2 struct {
			Nodes []struct {
				ID    string `json:"id"`
				Title string `json:"title"`
			} `json:"nodes"`
		} `json:"projectsV2"`
	} `json:"repository"`
}

// createIssueData is the schema for the createIssue mutation.
type createIssueData struct {
	CreateIssue *struct {
		Issue *struct {
			ID string `json:"id"`
		} `json:"issue"`
	} `json:"createIssue"`
}

// addProjectItemData is the schema for the addProjectV2ItemById mutation.
type addProjectItemData struct {
	AddProjectV2ItemByID *struct {
		Item *struct {
			ID string `json:"id"`
		} `json:"item"`
	} `json:"addProjectV2ItemById"`
}

// apiErrorResponse represents a non-2xx error body from the GitHub API.
type apiErrorResponse struct {
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url"`
}
