package client

import (
	"sort"
)

// Profile is the user directory entry remembered after a successful booking.
type Profile struct {
	userID string
	name   Name
	phone  Phone
}

func NewProfile(userID string, name Name, phone Phone) (*Profile, error) {
	if err := ValidateUserID(userID); err != nil {
		return nil, err
	}
	if name.IsZero() {
		return nil, ErrInvalidName
	}
	if phone.IsZero() {
		return nil, ErrInvalidPhone
	}
	return &Profile{userID: userID, name: name, phone: phone}, nil
}

func (p *Profile) UserID() string { return p.userID }
func (p *Profile) Name() Name     { return p.name }
func (p *Profile) Phone() Phone   { return p.phone }

// Directory maps user ids to profiles. Profiles are replaced, never mutated,
// so a Clone can be read without the owner's lock.
type Directory struct {
	profiles map[string]*Profile
}

func NewDirectory() *Directory {
	return &Directory{profiles: make(map[string]*Profile)}
}

func (d *Directory) Upsert(p *Profile) {
	d.profiles[p.userID] = p
}

func (d *Directory) Get(userID string) (*Profile, bool) {
	p, ok := d.profiles[userID]
	return p, ok
}

func (d *Directory) Len() int {
	return len(d.profiles)
}

// All returns profiles ordered by user id.
func (d *Directory) All() []*Profile {
	out := make([]*Profile, 0, len(d.profiles))
	for _, p := range d.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].userID < out[j].userID })
	return out
}
