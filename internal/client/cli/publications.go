package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/artfolio/artfolio-cli/internal/client/api"
)

// Artists lists the platform's users.
func (a *App) Artists(ctx context.Context) error {
	users, err := a.api.ListUsers(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	for _, u := range users {
		fmt.Printf("%d\t%s\t%s\n", u.ID, u.Username, u.UserType)
	}
	return nil
}

// Publications lists publications, optionally filtered by artist id.
func (a *App) Publications(ctx context.Context) error {
	filter, err := getSimpleText(a.reader, "Artist id (empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	var artist *int64
	if filter != "" {
		id, err := strconv.ParseInt(filter, 10, 64)
		if err != nil {
			fmt.Println("Artist id must be a number")
			return err
		}
		artist = &id
	}

	pubs, err := a.api.ListPublications(ctx, artist)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	for _, p := range pubs {
		fmt.Printf("%d\t%s\t%s\tby %s\n", p.ID, p.Title, p.CreationDate, p.ArtistUsername)
	}
	return nil
}

// AddPublication prompts for the publication form and creates it.
func (a *App) AddPublication(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	creationDate, err := getSimpleText(a.reader, "Creation date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}

	pub, err := a.api.CreatePublication(ctx, &api.PublicationCreate{
		Title:        title,
		CreationDate: creationDate,
		Description:  description,
	})
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Created publication %d\n", pub.ID)
	return nil
}

// Comments lists the comments of one publication.
func (a *App) Comments(ctx context.Context) error {
	id, err := a.promptPublicationID()
	if err != nil {
		return err
	}

	comments, err := a.api.ListComments(ctx, id)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	for _, c := range comments {
		fmt.Printf("%d\t%s: %s\n", c.ID, c.AuthorUsername, c.Content)
	}
	return nil
}

// CommentSummary prints the generated digest of a publication's comments.
func (a *App) CommentSummary(ctx context.Context) error {
	id, err := a.promptPublicationID()
	if err != nil {
		return err
	}

	summary, err := a.api.CommentSummary(ctx, id)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	if summary.Summary == nil {
		fmt.Println("No summary available.")
		return nil
	}
	fmt.Println(*summary.Summary)
	return nil
}

func (a *App) promptPublicationID() (int64, error) {
	text, err := getSimpleText(a.reader, "Publication id", os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		fmt.Println("Publication id must be a number")
		return 0, err
	}
	return id, nil
}
