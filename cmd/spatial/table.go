package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"spatial/internal/device"
	"spatial/internal/history"
)

func renderTable(headers []string, rows [][]string) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func renderDeviceTable(devices []device.Device) string {
	rows := make([][]string, 0, len(devices))
	for i, d := range devices {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			d.ID,
			string(d.Kind),
			d.Description,
		})
	}
	return renderTable([]string{"#", "Device", "Kind", "Description"}, rows)
}

func renderHistoryTable(entries []history.Entry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		when := ""
		if !e.CreatedAt.IsZero() {
			when = e.CreatedAt.Local().Format("2006-01-02 15:04:05")
		}
		rows = append(rows, []string{
			when,
			e.Operation,
			e.Preset,
			e.DeviceID,
			shortGeneration(e.Generation),
		})
	}
	return renderTable([]string{"When", "Operation", "Preset", "Device", "Generation"}, rows)
}

func shortGeneration(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
