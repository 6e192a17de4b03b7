package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/usermanager/internal/common"
	"github.com/dmitrijs2005/usermanager/internal/users"
)

// demoMessage renders registry errors the way the demonstration prints them.
func demoMessage(err error) string {
	var dup *users.DuplicateKeyError
	if errors.As(err, &dup) {
		return fmt.Sprintf("User with username '%s' already exists.", dup.UserName)
	}
	var nf *users.NotFoundError
	if errors.As(err, &nf) {
		return fmt.Sprintf("User with username '%s' not found.", nf.UserName)
	}
	return err.Error()
}

// report prints err when it matches kind and swallows it; any other error
// is returned.
func report(w io.Writer, err, kind error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, kind) {
		fmt.Fprintf(w, "Error: %s\n", demoMessage(err))
		return nil
	}
	return err
}

// RunDemo adds two users, tries a duplicate, looks up an existing and a
// missing user and removes an existing and a missing user, printing each
// outcome to w. Expected domain errors are printed; anything else aborts
// the demo and is returned.
func RunDemo(ctx context.Context, svc *users.Service, w io.Writer) error {
	err := func() error {
		u, err := svc.AddUser(ctx, "john_doe", "john@example.com", 30)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Added: %s\n", u)

		u, err = svc.AddUser(ctx, "jane_doe", "jane@example.com", 25)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Added: %s\n", u)

		_, err = svc.AddUser(ctx, "john_doe", "john_duplicate@example.com", 40)
		return err
	}()
	if err := report(w, err, common.ErrorAlreadyExists); err != nil {
		return err
	}

	err = func() error {
		u, err := svc.FindUser(ctx, "jane_doe")
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Found: %s\n", u)

		_, err = svc.FindUser(ctx, "non_existent")
		return err
	}()
	if err := report(w, err, common.ErrorNotFound); err != nil {
		return err
	}

	err = func() error {
		if err := svc.RemoveUser(ctx, "jane_doe"); err != nil {
			return err
		}
		fmt.Fprintln(w, "User 'jane_doe' removed successfully.")

		return svc.RemoveUser(ctx, "non_existent")
	}()

	return report(w, err, common.ErrorNotFound)
}
