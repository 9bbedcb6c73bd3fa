package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/A-PollyMer/blogsite-cli/internal/client/screens"
)

// promptID reads a numeric entity ID.
func promptID(reader *bufio.Reader, prompt string) (int64, error) {
	text, err := getSimpleText(reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a valid id: %q", text)
	}
	return id, nil
}

// Home lists the published posts, newest data straight from the backend.
// No authorization applies.
func (a *App) Home(ctx context.Context) error {
	if err := a.home.Refresh(ctx); err != nil {
		printlnFn(a.home.ErrorMessage())
		return err
	}

	posts := a.home.Posts()
	printlnFn(fmt.Sprintf("Recent posts (%d):", len(posts)))
	for _, p := range posts {
		printlnFn(fmt.Sprintf("#%d %s (by %s on %s)", p.ID, p.Title, p.Author, p.CreatedAt.Format("2006-01-02")))
		printlnFn(p.Content)
	}
	return nil
}

// Comments shows one post's comment thread, most recent first.
func (a *App) Comments(ctx context.Context) error {
	postID, err := promptID(a.reader, "Enter post id")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	thread := screens.NewCommentThread(a.api, postID, a.logger)
	if err := thread.Load(ctx); err != nil {
		printlnFn(thread.ErrorMessage())
		return err
	}

	a.printThread(thread)
	return nil
}

// Comment appends a comment to a post as the logged-in user and shows the
// updated thread immediately. Requires a session, like the web form that is
// hidden from anonymous visitors.
func (a *App) Comment(ctx context.Context) error {
	identity := a.session.Current()
	if identity == nil {
		printlnFn("Please login first!")
		return nil
	}

	postID, err := promptID(a.reader, "Enter post id")
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	content, err := getSimpleText(a.reader, "Write a comment", os.Stdout)
	if err != nil {
		return err
	}

	thread := screens.NewCommentThread(a.api, postID, a.logger)
	if err := thread.Load(ctx); err != nil {
		printlnFn(thread.ErrorMessage())
		return err
	}
	if err := thread.Post(ctx, identity.ID, content); err != nil {
		printlnFn(thread.ErrorMessage())
		return err
	}

	a.printThread(thread)
	return nil
}

func (a *App) printThread(thread *screens.CommentThread) {
	comments := thread.Comments()
	printlnFn(fmt.Sprintf("Comments (%d):", len(comments)))
	for _, c := range comments {
		printlnFn(fmt.Sprintf("  User #%d: %s", c.UserID, c.Content))
	}
}
