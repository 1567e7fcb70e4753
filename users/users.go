// Package users holds the Shelf API users namespace: account information
// and space usage.
package users

import (
	"fmt"

	"github.com/shelfhq/shelf-go/codec"
	"github.com/shelfhq/shelf-go/wire"
)

// Name is the set of display forms of a user's name.
type Name struct {
	GivenName string
	Surname   string
	// FamiliarName is what to call the user in informal contexts.
	FamiliarName    string
	DisplayName     string
	AbbreviatedName string
}

func (m *Name) MarshalWire() (*wire.Node, error) {
	obj := wire.NewObject(5)
	obj.Set("given_name", wire.FromString(m.GivenName))
	obj.Set("surname", wire.FromString(m.Surname))
	obj.Set("familiar_name", wire.FromString(m.FamiliarName))
	obj.Set("display_name", wire.FromString(m.DisplayName))
	obj.Set("abbreviated_name", wire.FromString(m.AbbreviatedName))
	return obj, nil
}

func (m *Name) UnmarshalWire(n *wire.Node) error {
	d := codec.Struct(n, "Name")
	m.GivenName = d.String("given_name")
	m.Surname = d.String("surname")
	m.FamiliarName = d.String("familiar_name")
	m.DisplayName = d.String("display_name")
	m.AbbreviatedName = d.String("abbreviated_name")
	return d.Err()
}

// Account holds the fields every account view shares. BasicAccount and
// FullAccount extend it; on the wire their objects are flat, parent fields
// beside their own.
type Account struct {
	AccountID     string
	Name          Name
	Email         string
	EmailVerified bool
	Disabled      bool
}

func (a *Account) marshalAccountFields(obj *wire.Node) error {
	obj.Set("account_id", wire.FromString(a.AccountID))
	if err := codec.SetRequired(obj, "Account", "name", &a.Name); err != nil {
		return err
	}
	obj.Set("email", wire.FromString(a.Email))
	obj.Set("email_verified", wire.FromBool(a.EmailVerified))
	obj.Set("disabled", wire.FromBool(a.Disabled))
	return nil
}

func (a *Account) unmarshalAccountFields(d *codec.Decoder) {
	a.AccountID = d.String("account_id")
	if n := d.Value("name"); n != nil {
		if err := a.Name.UnmarshalWire(n); err != nil {
			d.Fail("name", err)
		}
	}
	a.Email = d.String("email")
	a.EmailVerified = d.Bool("email_verified")
	a.Disabled = d.Bool("disabled")
}

func (a *Account) MarshalWire() (*wire.Node, error) {
	obj := wire.NewObject(5)
	if err := a.marshalAccountFields(obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func (a *Account) UnmarshalWire(n *wire.Node) error {
	d := codec.Struct(n, "Account")
	a.unmarshalAccountFields(d)
	return d.Err()
}

// BasicAccount is the view of any account returned by GetAccount.
type BasicAccount struct {
	Account
	// IsTeammate reports whether this account is on the caller's team.
	IsTeammate   bool
	TeamMemberID *string
}

func (a *BasicAccount) MarshalWire() (*wire.Node, error) {
	obj := wire.NewObject(7)
	if err := a.marshalAccountFields(obj); err != nil {
		return nil, err
	}
	obj.Set("is_teammate", wire.FromBool(a.IsTeammate))
	if a.TeamMemberID != nil {
		obj.Set("team_member_id", wire.FromString(*a.TeamMemberID))
	}
	return obj, nil
}

func (a *BasicAccount) UnmarshalWire(n *wire.Node) error {
	d := codec.Struct(n, "BasicAccount")
	a.unmarshalAccountFields(d)
	a.IsTeammate = d.Bool("is_teammate")
	a.TeamMemberID = d.OptString("team_member_id")
	return d.Err()
}

// FullAccount is the caller's own account as returned by
// GetCurrentAccount.
type FullAccount struct {
	Account
	Locale       string
	ReferralLink string
	// IsPaired reports whether the user also has a work account linked.
	IsPaired    bool
	AccountType AccountType
}

func (a *FullAccount) MarshalWire() (*wire.Node, error) {
	obj := wire.NewObject(9)
	if err := a.marshalAccountFields(obj); err != nil {
		return nil, err
	}
	obj.Set("locale", wire.FromString(a.Locale))
	obj.Set("referral_link", wire.FromString(a.ReferralLink))
	obj.Set("is_paired", wire.FromBool(a.IsPaired))
	if err := codec.SetRequired(obj, "FullAccount", "account_type", a.AccountType); err != nil {
		return nil, err
	}
	return obj, nil
}

func (a *FullAccount) UnmarshalWire(n *wire.Node) error {
	d := codec.Struct(n, "FullAccount")
	a.unmarshalAccountFields(d)
	a.Locale = d.String("locale")
	a.ReferralLink = d.String("referral_link")
	a.IsPaired = d.Bool("is_paired")
	at := d.Value("account_type")
	if err := d.Err(); err != nil {
		return err
	}
	v, err := DecodeAccountType(at)
	if err != nil {
		return err
	}
	a.AccountType = v
	return nil
}

// AccountType is the plan tier of an account.
type AccountType interface {
	codec.Marshaler
	isAccountType()
}

type AccountTypeBasic struct{}

type AccountTypePro struct{}

type AccountTypeBusiness struct{}

type AccountTypeOther struct {
	Tag string
}

func (*AccountTypeBasic) isAccountType()    {}
func (*AccountTypePro) isAccountType()      {}
func (*AccountTypeBusiness) isAccountType() {}
func (*AccountTypeOther) isAccountType()    {}

func (*AccountTypeBasic) MarshalWire() (*wire.Node, error) {
	return codec.Variant("basic", 0), nil
}

func (*AccountTypePro) MarshalWire() (*wire.Node, error) {
	return codec.Variant("pro", 0), nil
}

func (*AccountTypeBusiness) MarshalWire() (*wire.Node, error) {
	return codec.Variant("business", 0), nil
}

func (t *AccountTypeOther) MarshalWire() (*wire.Node, error) {
	return nil, &codec.EncodeError{Struct: "AccountType", Field: t.Tag, Message: "cannot encode unknown variant"}
}

func DecodeAccountType(n *wire.Node) (AccountType, error) {
	tag, _, err := codec.Tag(n, "AccountType")
	if err != nil {
		return nil, err
	}
	switch tag {
	case "basic":
		return &AccountTypeBasic{}, nil
	case "pro":
		return &AccountTypePro{}, nil
	case "business":
		return &AccountTypeBusiness{}, nil
	default:
		return &AccountTypeOther{Tag: tag}, nil
	}
}

// SpaceUsage is the caller's storage usage and quota.
type SpaceUsage struct {
	// Used is in bytes.
	Used       uint64
	Allocation SpaceAllocation
}

func (u *SpaceUsage) MarshalWire() (*wire.Node, error) {
	obj := wire.NewObject(2)
	obj.Set("used", wire.FromUint(u.Used))
	if err := codec.SetRequired(obj, "SpaceUsage", "allocation", u.Allocation); err != nil {
		return nil, err
	}
	return obj, nil
}

func (u *SpaceUsage) UnmarshalWire(n *wire.Node) error {
	d := codec.Struct(n, "SpaceUsage")
	u.Used = d.Uint64("used")
	alloc := d.Value("allocation")
	if err := d.Err(); err != nil {
		return err
	}
	v, err := DecodeSpaceAllocation(alloc)
	if err != nil {
		return err
	}
	u.Allocation = v
	return nil
}

// SpaceAllocation says where an account's quota comes from. Both known
// variants carry struct payloads, so their fields sit beside the ".tag"
// entry on the wire.
type SpaceAllocation interface {
	codec.Marshaler
	isSpaceAllocation()
}

type SpaceAllocationIndividual struct {
	IndividualSpaceAllocation
}

type SpaceAllocationTeam struct {
	TeamSpaceAllocation
}

type SpaceAllocationOther struct {
	Tag string
}

func (*SpaceAllocationIndividual) isSpaceAllocation() {}
func (*SpaceAllocationTeam) isSpaceAllocation()       {}
func (*SpaceAllocationOther) isSpaceAllocation()      {}

func (s *SpaceAllocationIndividual) MarshalWire() (*wire.Node, error) {
	return codec.FlattenVariant("individual", &s.IndividualSpaceAllocation)
}

func (s *SpaceAllocationTeam) MarshalWire() (*wire.Node, error) {
	return codec.FlattenVariant("team", &s.TeamSpaceAllocation)
}

func (s *SpaceAllocationOther) MarshalWire() (*wire.Node, error) {
	return nil, &codec.EncodeError{Struct: "SpaceAllocation", Field: s.Tag, Message: "cannot encode unknown variant"}
}

func DecodeSpaceAllocation(n *wire.Node) (SpaceAllocation, error) {
	tag, obj, err := codec.Tag(n, "SpaceAllocation")
	if err != nil {
		return nil, err
	}
	switch tag {
	case "individual":
		if obj == nil {
			return nil, &codec.DecodeError{Struct: "SpaceAllocation", Field: tag, Message: "missing variant payload"}
		}
		s := new(SpaceAllocationIndividual)
		if err := s.IndividualSpaceAllocation.UnmarshalWire(obj); err != nil {
			return nil, err
		}
		return s, nil
	case "team":
		if obj == nil {
			return nil, &codec.DecodeError{Struct: "SpaceAllocation", Field: tag, Message: "missing variant payload"}
		}
		s := new(SpaceAllocationTeam)
		if err := s.TeamSpaceAllocation.UnmarshalWire(obj); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return &SpaceAllocationOther{Tag: tag}, nil
	}
}

type IndividualSpaceAllocation struct {
	Allocated uint64
}

func (a *IndividualSpaceAllocation) MarshalWire() (*wire.Node, error) {
	obj := wire.NewObject(1)
	if err := a.MarshalWireFields(obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func (a *IndividualSpaceAllocation) MarshalWireFields(obj *wire.Node) error {
	obj.Set("allocated", wire.FromUint(a.Allocated))
	return nil
}

func (a *IndividualSpaceAllocation) UnmarshalWire(n *wire.Node) error {
	d := codec.Struct(n, "IndividualSpaceAllocation")
	a.Allocated = d.Uint64("allocated")
	return d.Err()
}

type TeamSpaceAllocation struct {
	Used      uint64
	Allocated uint64
}

func (a *TeamSpaceAllocation) MarshalWire() (*wire.Node, error) {
	obj := wire.NewObject(2)
	if err := a.MarshalWireFields(obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func (a *TeamSpaceAllocation) MarshalWireFields(obj *wire.Node) error {
	obj.Set("used", wire.FromUint(a.Used))
	obj.Set("allocated", wire.FromUint(a.Allocated))
	return nil
}

func (a *TeamSpaceAllocation) UnmarshalWire(n *wire.Node) error {
	d := codec.Struct(n, "TeamSpaceAllocation")
	a.Used = d.Uint64("used")
	a.Allocated = d.Uint64("allocated")
	return d.Err()
}

type GetAccountArg struct {
	AccountID string
}

func NewGetAccountArg(accountID string) *GetAccountArg {
	return &GetAccountArg{AccountID: accountID}
}

func (a *GetAccountArg) MarshalWire() (*wire.Node, error) {
	obj := wire.NewObject(1)
	obj.Set("account_id", wire.FromString(a.AccountID))
	return obj, nil
}

func (a *GetAccountArg) UnmarshalWire(n *wire.Node) error {
	d := codec.Struct(n, "GetAccountArg")
	a.AccountID = d.String("account_id")
	return d.Err()
}

// GetAccountError is the declared error of the get_account route.
type GetAccountError interface {
	error
	codec.Marshaler
	isGetAccountError()
}

type GetAccountErrorNoAccount struct{}

type GetAccountErrorOther struct {
	Tag string
}

func (*GetAccountErrorNoAccount) isGetAccountError() {}
func (*GetAccountErrorOther) isGetAccountError()     {}

func (*GetAccountErrorNoAccount) Error() string {
	return "no account with that id"
}

func (e *GetAccountErrorOther) Error() string {
	return fmt.Sprintf("get account error (%s)", e.Tag)
}

func (*GetAccountErrorNoAccount) MarshalWire() (*wire.Node, error) {
	return codec.Variant("no_account", 0), nil
}

func (e *GetAccountErrorOther) MarshalWire() (*wire.Node, error) {
	return nil, &codec.EncodeError{Struct: "GetAccountError", Field: e.Tag, Message: "cannot encode unknown variant"}
}

func DecodeGetAccountError(n *wire.Node) (GetAccountError, error) {
	tag, _, err := codec.Tag(n, "GetAccountError")
	if err != nil {
		return nil, err
	}
	switch tag {
	case "no_account":
		return &GetAccountErrorNoAccount{}, nil
	default:
		return &GetAccountErrorOther{Tag: tag}, nil
	}
}
