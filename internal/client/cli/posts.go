package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/A-PollyMer/blogsite-cli/internal/client/models"
	"github.com/A-PollyMer/blogsite-cli/internal/common"
)

// Posts lists the posts with their ids for the edit/delete flows. Protected.
func (a *App) Posts(ctx context.Context) error {
	if !a.ensureAuthorized(ctx) {
		return nil
	}

	if err := a.postScreen.Refresh(ctx); err != nil {
		printlnFn(a.postScreen.ErrorMessage())
		return err
	}

	items := a.postScreen.Items()
	printlnFn(fmt.Sprintf("Posts (%d):", len(items)))
	for _, p := range items {
		printlnFn(fmt.Sprintf("  #%d %s (by %s)", p.ID, p.Title, p.Author))
	}
	return nil
}

// promptPostBuffer collects title and content into the screen's buffer. The
// author field is owned by the screen and never prompted for.
func (a *App) promptPostBuffer() error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Enter content", os.Stdout)
	if err != nil {
		return err
	}
	a.postScreen.SetBuffer(title, content)
	return nil
}

// PostAdd creates a new post authored by the logged-in user. Protected.
func (a *App) PostAdd(ctx context.Context) error {
	if !a.ensureAuthorized(ctx) {
		return nil
	}

	a.postScreen.OpenCreate()
	if err := a.promptPostBuffer(); err != nil {
		return err
	}

	if err := a.postScreen.Save(ctx); err != nil {
		printlnFn(a.postScreen.ErrorMessage())
		if errors.Is(err, common.ErrValidation) {
			return nil
		}
		return err
	}
	printlnFn("Post created successfully!")
	return nil
}

// PostEdit updates an existing post by id. Protected.
func (a *App) PostEdit(ctx context.Context) error {
	if !a.ensureAuthorized(ctx) {
		return nil
	}

	if err := a.postScreen.Refresh(ctx); err != nil {
		printlnFn(a.postScreen.ErrorMessage())
		return err
	}

	id, err := promptID(a.reader, "Enter post id to edit")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	var target *models.Post
	for _, p := range a.postScreen.Items() {
		if p.ID == id {
			target = &p
			break
		}
	}
	if target == nil {
		printlnFn("No post with id", id)
		return nil
	}

	a.postScreen.OpenEdit(*target)
	if err := a.promptPostBuffer(); err != nil {
		return err
	}

	if err := a.postScreen.Save(ctx); err != nil {
		printlnFn(a.postScreen.ErrorMessage())
		if errors.Is(err, common.ErrValidation) {
			return nil
		}
		return err
	}
	printlnFn("Post updated successfully!")
	return nil
}

// PostDel removes a post by id after confirmation. Protected.
func (a *App) PostDel(ctx context.Context) error {
	if !a.ensureAuthorized(ctx) {
		return nil
	}

	if err := a.postScreen.Refresh(ctx); err != nil {
		printlnFn(a.postScreen.ErrorMessage())
		return err
	}

	id, err := promptID(a.reader, "Enter post id to delete")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.postScreen.Remove(ctx, id); err != nil {
		printlnFn(a.postScreen.ErrorMessage())
		return err
	}
	return nil
}
