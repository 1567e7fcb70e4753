package main

import (
	"context"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/shelfhq/shelf-go/users"
)

func account(cfg *AccountConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Account.Parse(cc, args)
	if err != nil {
		cfg.Account.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: account takes no arguments", cli.ErrUsage)
	}
	t, err := cfg.transport()
	if err != nil {
		return err
	}
	ctx := context.Background()
	acct, err := users.GetCurrentAccount(ctx, t)
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "%s <%s>\n", acct.Name.DisplayName, acct.Email)
	fmt.Fprintf(cc.Out, "id:    %s\n", acct.AccountID)
	fmt.Fprintf(cc.Out, "plan:  %s\n", accountTypeName(acct.AccountType))

	usage, err := users.GetSpaceUsage(ctx, t)
	if err != nil {
		return err
	}
	switch a := usage.Allocation.(type) {
	case *users.SpaceAllocationIndividual:
		fmt.Fprintf(cc.Out, "space: %s of %s\n", bytesize(usage.Used), bytesize(a.Allocated))
	case *users.SpaceAllocationTeam:
		fmt.Fprintf(cc.Out, "space: %s used, team %s of %s\n",
			bytesize(usage.Used), bytesize(a.Used), bytesize(a.Allocated))
	default:
		fmt.Fprintf(cc.Out, "space: %s used\n", bytesize(usage.Used))
	}
	return nil
}

func accountTypeName(at users.AccountType) string {
	switch v := at.(type) {
	case *users.AccountTypeBasic:
		return "basic"
	case *users.AccountTypePro:
		return "pro"
	case *users.AccountTypeBusiness:
		return "business"
	case *users.AccountTypeOther:
		return v.Tag
	}
	return "unknown"
}

func bytesize(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
