package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"orgsite-backend/internal/domains/newsletter"
	"orgsite-backend/internal/shared/apperror"
)

const exportSheet = "Subscribers"

var exportHeaders = []string{"Email", "Name", "Active", "Subscribed At"}

func (s *newsletterService) Export(ctx context.Context) (*excelize.File, error) {
	subs, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal("Failed to fetch subscribers", err)
	}

	f, err := buildSubscribersFile(subs)
	if err != nil {
		return nil, apperror.Internal("Failed to build export", err)
	}
	return f, nil
}

var exportWidths = map[string]float64{"A": 36, "B": 24, "D": 20}

func buildSubscribersFile(subs []newsletter.Subscriber) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeSubscribers(f, exportSheet, subs); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

// writeSubscribers fills sheet with a bold header row and one row per subscriber.
func writeSubscribers(f *excelize.File, sheet string, subs []newsletter.Subscriber) error {
	header := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, sub := range subs {
		name := ""
		if sub.Name != nil {
			name = *sub.Name
		}
		values := []interface{}{sub.Email, name, sub.IsActive, sub.CreatedAt.UTC().Format("2006-01-02 15:04:05")}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %s: %w", cell, err)
		}
	}

	for col, width := range exportWidths {
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("set width of %s: %w", col, err)
		}
	}
	return nil
}
