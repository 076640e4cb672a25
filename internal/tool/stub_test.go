package tool

import (
	"context"

	"github.com/tidwall/gjson"
)

// stubClient is a canned-response Client. When failWith is set every
// method returns it. Calls are recorded as method names for assertions.
type stubClient struct {
	failWith error
	calls    []string

	profileID   string
	jobIDs      []string
	feed        []gjson.Result
	jobs        []gjson.Result
	jobDetail   gjson.Result
	profile     gjson.Result
	company     gjson.Result
	connections []gjson.Result
	groupPosts  []gjson.Result
	invitations []gjson.Result
	convos      []gjson.Result
	stats       gjson.Result
	generic     gjson.Result
}

func (s *stubClient) record(name string) error {
	s.calls = append(s.calls, name)
	return s.failWith
}

func (s *stubClient) GetFeedPosts(_ context.Context, limit, offset int) ([]gjson.Result, error) {
	return s.feed, s.record("GetFeedPosts")
}

func (s *stubClient) SearchJobs(_ context.Context, keywords, location string, limit, offset int) ([]gjson.Result, error) {
	return s.jobs, s.record("SearchJobs")
}

func (s *stubClient) GetJob(_ context.Context, jobID string) (gjson.Result, error) {
	s.jobIDs = append(s.jobIDs, jobID)
	return s.jobDetail, s.record("GetJob")
}

func (s *stubClient) Post(_ context.Context, comment, visibility string) (gjson.Result, error) {
	return s.generic, s.record("Post")
}

func (s *stubClient) GetProfile(_ context.Context, publicID string) (gjson.Result, error) {
	s.profileID = publicID
	return s.profile, s.record("GetProfile")
}

func (s *stubClient) GetCompany(_ context.Context, companyID string) (gjson.Result, error) {
	return s.company, s.record("GetCompany")
}

func (s *stubClient) GetConnections(_ context.Context, limit int) ([]gjson.Result, error) {
	return s.connections, s.record("GetConnections")
}

func (s *stubClient) JoinGroup(_ context.Context, groupID string) (gjson.Result, error) {
	return s.generic, s.record("JoinGroup")
}

func (s *stubClient) GetGroupPosts(_ context.Context, groupID string, limit int) ([]gjson.Result, error) {
	return s.groupPosts, s.record("GetGroupPosts")
}

func (s *stubClient) SendInvitation(_ context.Context, publicID, message string) (gjson.Result, error) {
	return s.generic, s.record("SendInvitation")
}

func (s *stubClient) GetInvitations(_ context.Context, limit int) ([]gjson.Result, error) {
	return s.invitations, s.record("GetInvitations")
}

func (s *stubClient) SendMessage(_ context.Context, recipients []string, message string) (gjson.Result, error) {
	return s.generic, s.record("SendMessage")
}

func (s *stubClient) GetConversations(_ context.Context, limit int) ([]gjson.Result, error) {
	return s.convos, s.record("GetConversations")
}

func (s *stubClient) UpdateCompanyPage(_ context.Context, companyID string, data map[string]any) (gjson.Result, error) {
	return s.generic, s.record("UpdateCompanyPage")
}

func (s *stubClient) CompanyShare(_ context.Context, companyID, content string) (gjson.Result, error) {
	return s.generic, s.record("CompanyShare")
}

func (s *stubClient) GetCompanyAnalytics(_ context.Context, companyID string) (gjson.Result, error) {
	return s.generic, s.record("GetCompanyAnalytics")
}

func (s *stubClient) GetPostStats(_ context.Context, postID string) (gjson.Result, error) {
	return s.stats, s.record("GetPostStats")
}

// stubBase wires a tool base to a stub client and counts dials.
func stubBase(c *stubClient) (base, *int) {
	dials := 0
	b := base{Dial: func(context.Context) (Client, error) {
		dials++
		return c, nil
	}}
	return b, &dials
}

// failingBase is a base whose client factory always fails.
func failingBase(err error) base {
	return base{Dial: func(context.Context) (Client, error) {
		return nil, err
	}}
}

func results(jsons ...string) []gjson.Result {
	out := make([]gjson.Result, 0, len(jsons))
	for _, j := range jsons {
		out = append(out, gjson.Parse(j))
	}
	return out
}
