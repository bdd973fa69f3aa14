package main

import (
	"fmt"

	"github.com/pagesift/pagesift"
)

// Run executes the feed command.
func (c *FeedCmd) Run(deps *Dependencies) error {
	items, err := deps.Feeds.Read(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesift.ErrorMessage(err))
		return err
	}

	for _, item := range items {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", item.Title, item.Link)
	}

	return nil
}
