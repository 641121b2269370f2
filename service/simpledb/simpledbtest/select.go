package simpledbtest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var selectExpr = regexp.MustCompile("(?i)^\\s*select\\s+\\*\\s+from\\s+`?([A-Za-z0-9_.-]+)`?" +
	"(?:\\s+where\\s+itemName\\(\\)\\s*=\\s*'((?:[^']|'')*)')?" +
	"(?:\\s+limit\\s+(\\d+))?\\s*$")

type selectQuery struct {
	domain   string
	itemName *string
	limit    int
}

// parseSelect parses the subset of the select grammar the server supports:
//
//	select * from `domain` [where itemName() = 'name'] [limit n]
func parseSelect(expr string) (selectQuery, error) {
	idx := selectExpr.FindStringSubmatchIndex(expr)
	if idx == nil {
		return selectQuery{}, &Error{Status: 400, Code: "InvalidQueryExpression", Message: fmt.Sprintf("The specified query expression syntax is not valid: %s", expr)}
	}

	q := selectQuery{domain: expr[idx[2]:idx[3]]}
	if idx[4] >= 0 {
		name := strings.ReplaceAll(expr[idx[4]:idx[5]], "''", "'")
		q.itemName = &name
	}
	if idx[6] >= 0 {
		limit := expr[idx[6]:idx[7]]
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 || n > 2500 {
			return selectQuery{}, &Error{Status: 400, Code: "InvalidNumberValueTests", Message: fmt.Sprintf("Value (%s) for parameter limit is invalid.", limit)}
		}
		q.limit = n
	}
	return q, nil
}
