package github

import (
	"context"
	"fmt"

	apihttp "github.com/kmorrow/issuesheet/internal/adapter/api/http"
)

const repositoryQuery = `
query($owner: String!, $name: String!) {
  repository(owner: $owner, name: $name) {
    id
  }
}`

const projectsQuery = `
query($owner: String!, $name: String!, $search: String!) {
  repository(owner: $owner, name: $name) {
    projectsV2(query: $search, first: 1) {
      nodes {
        id
        title
      }
    }
  }
}`

const createIssueMutation = `
mutation($repositoryId: ID!, $title: String!, $body: String!) {
  createIssue(input: {repositoryId: $repositoryId, title: $title, body: $body}) {
    issue {
      id
    }
  }
}`

const addProjectItemMutation = `
mutation($projectId: ID!, $contentId: ID!) {
  addProjectV2ItemById(input: {projectId: $projectId, contentId: $contentId}) {
    item {
      id
    }
  }
}`

// ResolveRepositoryID looks up the node id of a repository by owner and name.
// Returns a not-found error when the repository does not exist or the token
// cannot see it.
func (c *Client) ResolveRepositoryID(ctx context.Context, owner, name string) (string, error) {
	const operation = "resolveRepository"

	var data repositoryQueryData
	err := c.do(ctx, operation, repositoryQuery, map[string]interface{}{
		"owner": owner,
		"name":  name,
	}, &data)
	if err != nil {
		return "", err
	}

	if data.Repository == nil {
		return "", apihttp.NewNotFoundError(operation, fmt.Sprintf("repository %s/%s not found", owner, name))
	}
	if data.Repository.ID == "" {
		return "", apihttp.NewMalformedResponseError(operation, "repository payload missing id")
	}

	return data.Repository.ID, nil
}

// FindProjectID looks up the node id of a Project (V2) board by a name filter
// on the given repository. Returns ("", nil) when no project matches. When
// several projects share the name, the first match wins; there is no
// disambiguation.
func (c *Client) FindProjectID(ctx context.Context, owner, repo, projectName string) (string, error) {
	const operation = "findProject"

	var data projectsQueryData
	err := c.do(ctx, operation, projectsQuery, map[string]interface{}{
		"owner":  owner,
		"name":   repo,
		"search": projectName,
	}, &data)
	if err != nil {
		return "", err
	}

	if data.Repository == nil {
		return "", apihttp.NewNotFoundError(operation, fmt.Sprintf("repository %s/%s not found", owner, repo))
	}

	nodes := data.Repository.ProjectsV2.Nodes
	if len(nodes) == 0 {
		return "", nil
	}
	if nodes[0].ID == "" {
		return "", apihttp.NewMalformedResponseError(operation, "project node missing id")
	}

	return nodes[0].ID, nil
}

// CreateIssue creates an issue in the repository identified by repositoryID
// and returns the new issue's node id.
func (c *Client) CreateIssue(ctx context.Context, repositoryID, title, body string) (string, error) {
	const operation = "createIssue"

	var data createIssueData
	err := c.do(ctx, operation, createIssueMutation, map[string]interface{}{
		"repositoryId": repositoryID,
		"title":        title,
		"body":         body,
	}, &data)
	if err != nil {
		return "", err
	}

	if data.CreateIssue == nil || data.CreateIssue.Issue == nil || data.CreateIssue.Issue.ID == "" {
		return "", apihttp.NewMalformedResponseError(operation, "createIssue payload missing issue id")
	}

	return data.CreateIssue.Issue.ID, nil
}

// AddProjectItem links an existing content node (issue) to a project and
// returns the new item's node id. The mutation is not idempotent: linking the
// same issue twice creates two items.
func (c *Client) AddProjectItem(ctx context.Context, projectID, contentID string) (string, error) {
	const operation = "addProjectItem"

	var data addProjectItemData
	err := c.do(ctx, operation, addProjectItemMutation, map[string]interface{}{
		"projectId": projectID,
		"contentId": contentID,
	}, &data)
	if err != nil {
		return "", err
	}

	if data.AddProjectV2ItemByID == nil || data.AddProjectV2ItemByID.Item == nil || data.AddProjectV2ItemByID.Item.ID == "" {
		return "", apihttp.NewMalformedResponseError(operation, "addProjectV2ItemById payload missing item id")
	}

	return data.AddProjectV2ItemByID.Item.ID, nil
}
