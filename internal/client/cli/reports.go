package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/artfolio/artfolio-cli/internal/client/api"
	"github.com/artfolio/artfolio-cli/internal/client/models"
)

// Reports lists the current user's reports and whether each has a result.
func (a *App) Reports(ctx context.Context) error {
	reports, err := a.api.ListReports(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	for _, r := range reports {
		status := "pending"
		if r.Result != "" {
			status = "ready"
		}
		fmt.Printf("%d\t%s\t%s\t%s\n", r.ID, r.Name, r.Type, status)
	}
	return nil
}

// AddReport prompts for the report form, submits it and then polls until the
// generated result arrives or the poll window closes.
func (a *App) AddReport(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Report name", os.Stdout)
	if err != nil {
		return err
	}
	reportType, err := getSimpleText(a.reader, "Report type (descriptif/analyse/evaluation)", os.Stdout)
	if err != nil {
		return err
	}
	path, err := getSimpleText(a.reader, "Path to picture", os.Stdout)
	if err != nil {
		return err
	}

	picture, err := readFile(path)
	if err != nil {
		log.Printf("Cannot read picture: %s", err.Error())
		return err
	}

	report, err := a.api.CreateReport(ctx, &api.ReportCreate{
		Name:        name,
		Type:        models.ReportType(reportType),
		Picture:     picture,
		PictureName: path,
	})
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Report %d created, waiting for the result...\n", report.ID)

	done, err := a.api.WaitForResult(ctx, report.ID)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Println(done.Result)
	return nil
}
