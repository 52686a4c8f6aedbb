package workspace

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"akc_operations/internal/domain/entities"
	"akc_operations/internal/domain/money"
	"akc_operations/internal/usecase/interfaces"
)

const itemTableMarker = "{{ItemTable}}"

const defaultEstimateTemplate = `ESTIMATE {{EstimateNumber}}
Date: {{Date}}

Customer: {{CustomerName}}
{{CustomerAddress}}
{{CustomerCityStateZip}}

Site: {{SiteLocationAddress}}
{{SiteLocationCity}}, {{SiteLocationState}} {{SiteLocationZip}}

PO Number: {{PONumber}}
Job: {{JobDescription}}

{{ItemTable}}
Estimate amount: {{EstimateAmount}}
Contingency: {{ContingencyAmount}}
`

func (w *Workspace) template(id string) (string, error) {
	if w.templatesDir != "" && id != "" && !strings.ContainsAny(id, `/\`) {
		raw, err := os.ReadFile(filepath.Join(w.templatesDir, id+".txt"))
		if err == nil {
			return string(raw), nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
	}
	if id == "estimate" || id == "" {
		return defaultEstimateTemplate, nil
	}
	return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
}

// Render copies the template into the target folder with its placeholders
// replaced and the line items laid out as an ITEM/SERVICE table.
func (w *Workspace) Render(ctx context.Context, req interfaces.DocumentRequest) (interfaces.Document, error) {
	if err := ctx.Err(); err != nil {
		return interfaces.Document{}, err
	}
	tpl, err := w.template(req.TemplateID)
	if err != nil {
		return interfaces.Document{}, err
	}
	_, dir, err := w.readMeta(req.FolderID)
	if err != nil {
		return interfaces.Document{}, err
	}

	keys := make([]string, 0, len(req.Replacements))
	for k := range req.Replacements {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, 2*len(keys)+2)
	for _, k := range keys {
		pairs = append(pairs, k, req.Replacements[k])
	}
	pairs = append(pairs, itemTableMarker, itemTable(req.LineItems))
	body := strings.NewReplacer(pairs...).Replace(tpl)

	id := w.newID()
	name := filepath.Base(strings.TrimSpace(req.Name))
	if name == "." || name == "" {
		name = id
	}
	if err := os.WriteFile(filepath.Join(dir, id+"-"+name+".txt"), []byte(body), 0o644); err != nil {
		return interfaces.Document{}, fmt.Errorf("render %s: %w", name, err)
	}
	return interfaces.Document{ID: id, URL: w.url(id)}, nil
}

func itemTable(items []entities.EstimateLineItem) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM/SERVICE\tDESCRIPTION\tQTY/HOURS\tRATE\tAMOUNT")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", it.ItemService, it.Description, it.QtyHours, money.FormatUSD(it.Rate), money.FormatUSD(it.Amount))
	}
	_ = tw.Flush()
	return b.String()
}
