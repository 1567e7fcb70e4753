package users

import (
	"context"
	"errors"
	"testing"

	shelf "github.com/shelfhq/shelf-go"
	"github.com/shelfhq/shelf-go/wire"
)

func mustUnmarshal(t *testing.T, s string) *wire.Node {
	t.Helper()
	n, err := wire.Unmarshal([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestFullAccountInheritanceFlat(t *testing.T) {
	// parent fields sit beside the subtype's own, no nesting and no tag
	a := new(FullAccount)
	err := a.UnmarshalWire(mustUnmarshal(t, `{
		"account_id": "dbid:AAH4f99T0taONIb-OurWxbNQ6ywGRopQngc",
		"name": {"given_name":"Franz","surname":"Ferdinand","familiar_name":"Franz",
		         "display_name":"Franz Ferdinand","abbreviated_name":"FF"},
		"email": "franz@shelfapi.com",
		"email_verified": true,
		"disabled": false,
		"locale": "en",
		"referral_link": "https://shelf.example/referrals/r1",
		"is_paired": false,
		"account_type": {".tag":"pro"}
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if a.AccountID == "" || a.Email != "franz@shelfapi.com" {
		t.Errorf("parent fields = %q %q", a.AccountID, a.Email)
	}
	if a.Name.DisplayName != "Franz Ferdinand" {
		t.Errorf("Name = %+v", a.Name)
	}
	if a.Locale != "en" || a.IsPaired {
		t.Errorf("own fields = %q %v", a.Locale, a.IsPaired)
	}
	if _, ok := a.AccountType.(*AccountTypePro); !ok {
		t.Errorf("account type %T", a.AccountType)
	}

	n, err := a.MarshalWire()
	if err != nil {
		t.Fatal(err)
	}
	if n.Get("account_id") == nil || n.Get("locale") == nil {
		t.Error("encoded object must hold parent and own fields side by side")
	}
	if n.Get(".tag") != nil {
		t.Error("plain inheritance carries no tag")
	}
}

func TestBasicAccountMissingParentField(t *testing.T) {
	a := new(BasicAccount)
	err := a.UnmarshalWire(mustUnmarshal(t, `{
		"account_id": "dbid:1",
		"name": {"given_name":"A","surname":"B","familiar_name":"A",
		         "display_name":"A B","abbreviated_name":"AB"},
		"email_verified": true,
		"disabled": false,
		"is_teammate": false
	}`))
	if err == nil {
		t.Fatal("want error for missing email")
	}
	if got := err.Error(); got != "decode BasicAccount.email: missing required field" {
		t.Errorf("err = %q", got)
	}
}

func TestSpaceAllocationFlatten(t *testing.T) {
	s := &SpaceAllocationIndividual{IndividualSpaceAllocation{Allocated: 10737418240}}
	n, err := s.MarshalWire()
	if err != nil {
		t.Fatal(err)
	}
	d, err := wire.Marshal(n)
	if err != nil {
		t.Fatal(err)
	}
	want := `{".tag":"individual","allocated":10737418240}`
	if string(d) != want {
		t.Errorf("encoded %s, want %s", d, want)
	}

	back, err := DecodeSpaceAllocation(mustUnmarshal(t, `{".tag":"team","used":400,"allocated":1000}`))
	if err != nil {
		t.Fatal(err)
	}
	team, ok := back.(*SpaceAllocationTeam)
	if !ok {
		t.Fatalf("decoded %T", back)
	}
	if team.Used != 400 || team.Allocated != 1000 {
		t.Errorf("team = %+v", team)
	}
}

func TestSpaceUsageLargeNumbers(t *testing.T) {
	// past 2^53, where float64 would lose precision
	in := `{"used":9007199254740993,"allocation":{".tag":"individual","allocated":18446744073709551615}}`
	u := new(SpaceUsage)
	if err := u.UnmarshalWire(mustUnmarshal(t, in)); err != nil {
		t.Fatal(err)
	}
	if u.Used != 9007199254740993 {
		t.Errorf("Used = %d", u.Used)
	}
	ind := u.Allocation.(*SpaceAllocationIndividual)
	if ind.Allocated != 18446744073709551615 {
		t.Errorf("Allocated = %d", ind.Allocated)
	}

	n, err := u.MarshalWire()
	if err != nil {
		t.Fatal(err)
	}
	d, err := wire.Marshal(n)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != in {
		t.Errorf("round trip %s", d)
	}
}

func TestAccountTypeUnknownTag(t *testing.T) {
	at, err := DecodeAccountType(mustUnmarshal(t, `{".tag":"enterprise"}`))
	if err != nil {
		t.Fatal(err)
	}
	o, ok := at.(*AccountTypeOther)
	if !ok {
		t.Fatalf("decoded %T", at)
	}
	if o.Tag != "enterprise" {
		t.Errorf("Tag = %q", o.Tag)
	}
}

type fakeTransport struct {
	req *shelf.Request
	res *shelf.Response
}

func (f *fakeTransport) RoundTrip(_ context.Context, req *shelf.Request) (*shelf.Response, error) {
	f.req = req
	return f.res, nil
}

func TestGetCurrentAccountRoute(t *testing.T) {
	ft := &fakeTransport{res: &shelf.Response{
		Status: 200,
		Result: []byte(`{
			"account_id":"dbid:1",
			"name":{"given_name":"A","surname":"B","familiar_name":"A",
			        "display_name":"A B","abbreviated_name":"AB"},
			"email":"a@b.c","email_verified":true,"disabled":false,
			"locale":"en","referral_link":"https://shelf.example/r","is_paired":false,
			"account_type":{".tag":"basic"}
		}`),
	}}
	a, err := GetCurrentAccount(context.Background(), ft)
	if err != nil {
		t.Fatal(err)
	}
	if ft.req.Fn() != "users/get_current_account" {
		t.Errorf("fn = %q", ft.req.Fn())
	}
	if len(ft.req.Params) != 0 {
		t.Errorf("void arg must send no params, got %s", ft.req.Params)
	}
	if a.AccountID != "dbid:1" {
		t.Errorf("AccountID = %q", a.AccountID)
	}
}

func TestGetAccountRouteError(t *testing.T) {
	ft := &fakeTransport{res: &shelf.Response{
		Status: 409,
		Result: []byte(`{"error_summary":"no_account/..","error":{".tag":"no_account"}}`),
	}}
	_, err := GetAccount(context.Background(), ft, NewGetAccountArg("dbid:zzz"))
	var na *GetAccountErrorNoAccount
	if !errors.As(err, &na) {
		t.Fatalf("err = %v", err)
	}
}

func TestGetSpaceUsageRoute(t *testing.T) {
	ft := &fakeTransport{res: &shelf.Response{
		Status: 200,
		Result: []byte(`{"used":314159,"allocation":{".tag":"individual","allocated":10485760}}`),
	}}
	u, err := GetSpaceUsage(context.Background(), ft)
	if err != nil {
		t.Fatal(err)
	}
	if u.Used != 314159 {
		t.Errorf("Used = %d", u.Used)
	}
}
