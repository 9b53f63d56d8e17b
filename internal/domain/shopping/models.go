package shopping

import (
	"fmt"
	"strings"
)

type Item struct {
	Name        string `json:"name"`
	Unit        string `json:"measurement_unit"`
	TotalAmount int64  `json:"amount"`
}

// List is the aggregated shopping list. An empty list is a valid result
// meaning the cart holds nothing.
type List struct {
	Items []Item
}

func (l List) Empty() bool {
	return len(l.Items) == 0
}

const header = "Shopping list:"

// Text renders the list as plain text, one line per item.
func (l List) Text() string {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteByte('\n')
	for _, item := range l.Items {
		fmt.Fprintf(&sb, "%s (%s) — %d\n", item.Name, item.Unit, item.TotalAmount)
	}
	return sb.String()
}
