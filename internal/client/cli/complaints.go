package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/artfolio/artfolio-cli/internal/client/api"
	"github.com/artfolio/artfolio-cli/internal/client/models"
)

// Complaints lists complaints. The user picks the mailbox: everything the
// account can see, only received ones, or only sent ones.
func (a *App) Complaints(ctx context.Context) error {
	box, err := getSimpleText(a.reader, "Mailbox (all/received/sent, empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	var complaints []models.Complaint
	switch box {
	case "received":
		complaints, err = a.api.ReceivedComplaints(ctx)
	case "sent":
		complaints, err = a.api.SentComplaints(ctx)
	default:
		complaints, err = a.api.ListComplaints(ctx)
	}
	if err != nil {
		log.Println(err.Error())
		return err
	}

	for _, c := range complaints {
		fmt.Printf("%d\t%s\t%s\t%s\n", c.ID, c.Subject, c.Sentiment, c.Content)
	}
	return nil
}

// AddComplaint prompts for the complaint form and files it. The backend
// answers with its local sentiment analysis, which is printed back.
func (a *App) AddComplaint(ctx context.Context) error {
	subject, err := getSimpleText(a.reader, "Subject (system/user)", os.Stdout)
	if err != nil {
		return err
	}

	var target *int64
	if subject == string(models.ComplaintSubjectUser) {
		text, err := getSimpleText(a.reader, "Target user id", os.Stdout)
		if err != nil {
			return err
		}
		id, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			fmt.Println("Target user id must be a number")
			return err
		}
		target = &id
	}

	content, err := GetMultiline(a.reader, "Complaint text", os.Stdout)
	if err != nil {
		return err
	}

	complaint, err := a.api.CreateComplaint(ctx, &api.ComplaintCreate{
		Target:  target,
		Subject: models.ComplaintSubject(subject),
		Content: content,
	})
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Complaint %d filed (sentiment: %s)\n", complaint.ID, complaint.Sentiment)
	return nil
}
