package users

import (
	"context"

	shelf "github.com/shelfhq/shelf-go"
	"github.com/shelfhq/shelf-go/wire"
)

const namespace = "users"

func errDecoder[E error](dec func(*wire.Node) (E, error)) shelf.ErrorDecoder {
	return func(n *wire.Node) (error, error) {
		e, err := dec(n)
		if err != nil {
			return nil, err
		}
		return e, nil
	}
}

// GetCurrentAccount returns the account the access token belongs to.
func GetCurrentAccount(ctx context.Context, t shelf.Transport) (*FullAccount, error) {
	res := new(FullAccount)
	err := shelf.RPC(ctx, t, shelf.EndpointAPI, namespace, "get_current_account", nil, res, nil)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// GetAccount returns another user's account by id.
func GetAccount(ctx context.Context, t shelf.Transport, arg *GetAccountArg) (*BasicAccount, error) {
	res := new(BasicAccount)
	err := shelf.RPC(ctx, t, shelf.EndpointAPI, namespace, "get_account", arg, res, errDecoder(DecodeGetAccountError))
	if err != nil {
		return nil, err
	}
	return res, nil
}

// GetSpaceUsage returns the caller's storage usage and quota.
func GetSpaceUsage(ctx context.Context, t shelf.Transport) (*SpaceUsage, error) {
	res := new(SpaceUsage)
	err := shelf.RPC(ctx, t, shelf.EndpointAPI, namespace, "get_space_usage", nil, res, nil)
	if err != nil {
		return nil, err
	}
	return res, nil
}
