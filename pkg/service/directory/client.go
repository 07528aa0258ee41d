package directory

import (
	"context"
	"encoding/json"

	"github.com/aegee-muenchen/dirsync/pkg/domain/model"
	"github.com/aegee-muenchen/dirsync/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
	admin "google.golang.org/api/admin/directory/v1"
	"google.golang.org/api/option"
)

// DefaultCustomer is the Admin SDK alias for the authorized account's own
// customer
const DefaultCustomer = "my_customer"

// Client wraps the Admin SDK Directory API
type Client struct {
	service  *admin.Service
	customer string
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithCustomer overrides the customer identifier
func WithCustomer(customer string) ClientOption {
	return func(c *Client) {
		c.customer = customer
	}
}

// NewClient creates a directory client from an OAuth token source
func NewClient(ctx context.Context, tokenSource oauth2.TokenSource, opts ...ClientOption) (*Client, error) {
	service, err := admin.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, goerr.Wrap(model.ErrDirectoryCredential, "failed to create directory service",
			goerr.V("cause", err.Error()))
	}

	c := &Client{
		service:  service,
		customer: DefaultCustomer,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Users lists all directory users of the customer, ordered by email.
// Pages are followed until exhaustion.
func (c *Client) Users(ctx context.Context) ([]model.DirectoryUser, error) {
	var users []model.DirectoryUser
	pageToken := ""
	for {
		call := c.service.Users.List().
			Customer(c.customer).
			OrderBy("email").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list directory users",
				goerr.V("customer", c.customer))
		}
		for _, u := range resp.Users {
			users = append(users, toDirectoryUser(u))
		}
		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	ctxlog.From(ctx).Debug("fetched directory users", "count", len(users))
	return users, nil
}

// GroupMembers lists the members of a group identified by its address
func (c *Client) GroupMembers(ctx context.Context, group types.GroupAddress) ([]model.DirectoryGroupMember, error) {
	var members []model.DirectoryGroupMember
	pageToken := ""
	for {
		call := c.service.Members.List(group.String()).Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list group members",
				goerr.V("group", group))
		}
		for _, m := range resp.Members {
			members = append(members, model.DirectoryGroupMember{
				ID:     types.DirectoryUserID(m.Id),
				Email:  m.Email,
				Role:   m.Role,
				Type:   m.Type,
				Status: m.Status,
			})
		}
		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	ctxlog.From(ctx).Debug("fetched group members",
		"group", group.String(), "count", len(members))
	return members, nil
}

func toDirectoryUser(u *admin.User) model.DirectoryUser {
	user := model.DirectoryUser{
		ID:           types.DirectoryUserID(u.Id),
		PrimaryEmail: u.PrimaryEmail,
		Suspended:    u.Suspended,
	}
	if u.Name != nil {
		user.FullName = u.Name.FullName
	}
	user.Emails = decodeEmails(u.Emails)
	return user
}

// decodeEmails converts the Admin SDK's untyped emails field. The API
// declares it as any; in practice it is a list of {address, type, primary}
// objects. Unparseable entries are dropped rather than failing the fetch.
func decodeEmails(raw interface{}) []model.DirectoryEmail {
	if raw == nil {
		return nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil
	}
	var emails []model.DirectoryEmail
	if err := json.Unmarshal(data, &emails); err != nil {
		return nil
	}
	return emails
}
