package http

import (
	"context"
	"fmt"
	"strings"

	"github.com/awslabs/aws-query-go/middleware"
	"github.com/awslabs/aws-query-go/middleware/id"
)

var validChars = map[rune]bool{
	'!': true, '#': true, '$': true, '%': true, '&': true, '\'': true, '*': true, '+': true,
	'-': true, '.': true, '^': true, '_': true, '`': true, '|': true, '~': true,
}

// UserAgentBuilder is a builder for a HTTP User-Agent string.
type UserAgentBuilder struct {
	sb strings.Builder
}

// NewUserAgentBuilder returns a new UserAgentBuilder.
func NewUserAgentBuilder() *UserAgentBuilder {
	return &UserAgentBuilder{sb: strings.Builder{}}
}

// AddKey adds the named component/product to the agent string
func (u *UserAgentBuilder) AddKey(key string) {
	u.appendTo(key)
}

// AddKeyValue adds the named key to the agent string with the given value.
func (u *UserAgentBuilder) AddKeyValue(key, value string) {
	u.appendTo(key + "#" + strings.Map(rules, value))
}

// Build returns the constructed User-Agent string. May be called multiple times.
func (u *UserAgentBuilder) Build() string {
	return u.sb.String()
}

func (u *UserAgentBuilder) appendTo(value string) {
	if u.sb.Len() > 0 {
		u.sb.WriteRune(' ')
	}
	u.sb.WriteString(value)
}

func rules(r rune) rune {
	switch {
	case r >= '0' && r <= '9':
		return r
	case r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z':
		return r
	case validChars[r]:
		return r
	default:
		return '-'
	}
}

const userAgentHeader = "User-Agent"

// UserAgentMiddleware sets the User-Agent header of the request to the
// builder's agent string, appending any value already present.
type UserAgentMiddleware struct {
	builder *UserAgentBuilder
}

// AddUserAgentMiddleware adds a UserAgentMiddleware with the keys provided to
// the Build step of the stack.
func AddUserAgentMiddleware(stack *middleware.Stack, keys ...string) error {
	b := NewUserAgentBuilder()
	for _, k := range keys {
		b.AddKey(k)
	}
	return stack.Build.Add(&UserAgentMiddleware{builder: b}, middleware.After)
}

// ID returns the identifier of the middleware.
func (*UserAgentMiddleware) ID() string { return id.UserAgent }

// HandleBuild sets the User-Agent header.
func (m *UserAgentMiddleware) HandleBuild(
	ctx context.Context, in middleware.BuildInput, next middleware.BuildHandler,
) (
	out middleware.BuildOutput, metadata middleware.Metadata, err error,
) {
	req, ok := in.Request.(*Request)
	if !ok {
		return out, metadata, fmt.Errorf("unknown transport type %T", in.Request)
	}

	ua := m.builder.Build()
	if v := req.Header.Get(userAgentHeader); len(v) != 0 {
		ua = ua + " " + v
	}
	req.Header.Set(userAgentHeader, ua)

	return next.HandleBuild(ctx, in)
}
