package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	dto "github.com/prometheus/client_model/go"

	"github.com/dmitrijs2005/usermanager/internal/common"
)

var errUsage = errors.New("usage")

// printErr reports domain and usage errors to the user. Other errors are
// logged and returned.
func (a *App) printErr(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorAlreadyExists), errors.Is(err, common.ErrorNotFound):
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return nil
	case errors.Is(err, errUsage):
		fmt.Fprintln(a.out, err.Error())
		return nil
	default:
		a.logger.Error(ctx, "command failed", "error", err)
		fmt.Fprintf(a.out, "Internal error: %v\n", err)
		return err
	}
}

func (a *App) Add(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return a.printErr(ctx, fmt.Errorf("%w: add <username> <email> <age>", errUsage))
	}

	age, err := strconv.Atoi(args[2])
	if err != nil {
		return a.printErr(ctx, fmt.Errorf("%w: age must be an integer, got %q", errUsage, args[2]))
	}

	u, err := a.service.AddUser(ctx, args[0], args[1], age)
	if err != nil {
		return a.printErr(ctx, err)
	}

	fmt.Fprintf(a.out, "Added: %s\n", u)
	return nil
}

func (a *App) Find(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.printErr(ctx, fmt.Errorf("%w: find <username>", errUsage))
	}

	u, err := a.service.FindUser(ctx, args[0])
	if err != nil {
		return a.printErr(ctx, err)
	}

	fmt.Fprintf(a.out, "Found: %s\n", u)
	return nil
}

func (a *App) Remove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.printErr(ctx, fmt.Errorf("%w: remove <username>", errUsage))
	}

	if err := a.service.RemoveUser(ctx, args[0]); err != nil {
		return a.printErr(ctx, err)
	}

	fmt.Fprintf(a.out, "User '%s' removed successfully.\n", args[0])
	return nil
}

func (a *App) List(ctx context.Context, args []string) error {
	list, err := a.service.ListUsers(ctx)
	if err != nil {
		return a.printErr(ctx, err)
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "No users.")
		return nil
	}

	for _, u := range list {
		fmt.Fprintln(a.out, u)
	}
	return nil
}

func formatLabels(m *dto.Metric) string {
	if len(m.GetLabel()) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m.GetLabel()))
	for _, lp := range m.GetLabel() {
		parts = append(parts, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Stats prints the registry counters and gauges, one sample per line.
func (a *App) Stats(ctx context.Context, args []string) error {
	families, err := a.gatherer.Gather()
	if err != nil {
		return a.printErr(ctx, fmt.Errorf("gather metrics: %w", err))
	}

	var lines []string
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "usermanager_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			var v float64
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				v = m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				v = m.GetGauge().GetValue()
			default:
				continue
			}
			lines = append(lines, fmt.Sprintf("%s%s %g", mf.GetName(), formatLabels(m), v))
		}
	}
	sort.Strings(lines)

	for _, l := range lines {
		fmt.Fprintln(a.out, l)
	}
	return nil
}
