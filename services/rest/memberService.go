package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_members/entities"
	"github.com/unicsmcr/hs_members/environment"
	"github.com/unicsmcr/hs_members/services"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const membersPath = "members"

type getMembersRes struct {
	Items []entities.Member `json:"items"`
	Count int               `json:"count"`
}

type deleteMemberRes struct {
	ID entities.MemberID `json:"id"`
}

type restMemberService struct {
	logger  *zap.Logger
	client  *http.Client
	baseURL *url.URL
}

// NewRESTMemberService creates a MemberService backed by the members REST API
// located at the URL in the MEMBERS_API_URL environment variable
func NewRESTMemberService(logger *zap.Logger, env *environment.Env, client *http.Client) (services.MemberService, error) {
	rawURL := strings.TrimSpace(env.Get(environment.MembersAPIURL))
	if rawURL == "" {
		return nil, errors.New("members API URL is not set")
	}

	baseURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse members API URL %s", rawURL)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, errors.Errorf("members API URL %s must be absolute", rawURL)
	}

	return &restMemberService{
		logger:  logger,
		client:  client,
		baseURL: baseURL,
	}, nil
}

func (s *restMemberService) GetMembers(ctx context.Context, page, limit int) ([]entities.Member, int, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var res getMembersRes
	err := s.do(ctx, http.MethodGet, s.endpoint(query, membersPath), nil, &res)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "could not fetch page %d of members", page)
	}

	if res.Items == nil {
		res.Items = []entities.Member{}
	}
	return res.Items, res.Count, nil
}

func (s *restMemberService) UpdateMember(ctx context.Context, member entities.Member) (*entities.Member, error) {
	if member.ID == "" {
		return nil, services.ErrInvalidID
	}

	body, err := json.Marshal(member)
	if err != nil {
		return nil, errors.Wrap(err, "could not encode member")
	}

	var updated entities.Member
	err = s.do(ctx, http.MethodPut, s.endpoint(nil, membersPath, member.ID.String()), body, &updated)
	if err != nil {
		return nil, errors.Wrapf(err, "could not update member %s", member.ID)
	}

	if updated.ID == "" {
		updated.ID = member.ID
	}
	return &updated, nil
}

func (s *restMemberService) DeleteMemberWithID(ctx context.Context, memberID entities.MemberID) (entities.MemberID, error) {
	if memberID == "" {
		return "", services.ErrInvalidID
	}

	var res deleteMemberRes
	err := s.do(ctx, http.MethodDelete, s.endpoint(nil, membersPath, memberID.String()), nil, &res)
	if err != nil {
		return "", errors.Wrapf(err, "could not delete member %s", memberID)
	}

	// the API answers with either {id} or the deleted member; some deployments send nothing at all
	if res.ID == "" {
		return memberID, nil
	}
	return res.ID, nil
}

func (s *restMemberService) endpoint(query url.Values, segments ...string) string {
	u := *s.baseURL
	escaped := make([]string, 0, len(segments))
	for _, segment := range segments {
		escaped = append(escaped, url.PathEscape(segment))
	}
	u.Path = strings.TrimSuffix(s.baseURL.Path, "/") + "/" + strings.Join(segments, "/")
	u.RawPath = strings.TrimSuffix(s.baseURL.EscapedPath(), "/") + "/" + strings.Join(escaped, "/")
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (s *restMemberService) do(ctx context.Context, method, endpoint string, body []byte, out interface{}) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, endpoint, reader)
	if err != nil {
		return errors.Wrap(err, "could not create request")
	}
	req = req.WithContext(ctx)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := s.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s failed", method, endpoint)
	}
	defer res.Body.Close()

	resBody, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "could not read response body")
	}

	switch {
	case res.StatusCode == http.StatusNotFound:
		return errors.Wrap(services.ErrNotFound, fmt.Sprintf("%s %s", method, endpoint))
	case res.StatusCode < 200 || res.StatusCode > 299:
		s.logger.Debug("members API rejected request",
			zap.String("method", method),
			zap.String("url", endpoint),
			zap.Int("status", res.StatusCode))
		return errors.Wrap(services.ErrRequestFailed, fmt.Sprintf("%s %s returned %d", method, endpoint, res.StatusCode))
	}

	if out == nil || len(bytes.TrimSpace(resBody)) == 0 {
		return nil
	}

	if err := json.Unmarshal(resBody, out); err != nil {
		return errors.Wrap(err, "could not decode response body")
	}
	return nil
}
