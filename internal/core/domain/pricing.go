package domain

// BookingDraft is the in-progress booking form. Its total is recomputed
// locally whenever the package or the party size changes.
type BookingDraft struct {
	pkg    *Package
	people int
}

func NewBookingDraft(pkg *Package, people int) *BookingDraft {
	return &BookingDraft{pkg: pkg, people: people}
}

func (d *BookingDraft) SelectPackage(pkg *Package) {
	d.pkg = pkg
}

func (d *BookingDraft) SetPeople(people int) {
	d.people = people
}

func (d *BookingDraft) Package() *Package {
	return d.pkg
}

func (d *BookingDraft) People() int {
	return d.people
}

func (d *BookingDraft) Currency() Currency {
	if d.pkg == nil {
		return BaseCurrency
	}

	return d.pkg.Currency
}

// Total is price times party size in the package currency.
func (d *BookingDraft) Total() float64 {
	if d.pkg == nil || d.people < 1 {
		return 0
	}

	return d.pkg.Price * float64(d.people)
}

func (d *BookingDraft) TotalIn(c Currency) (float64, error) {
	return Convert(d.Total(), d.Currency(), c)
}

func (d *BookingDraft) Validate() error {
	if d.pkg == nil {
		return ErrPackageNotSelected
	}

	if d.people < 1 {
		return ErrInvalidPartySize
	}

	if !d.pkg.HasAvailability(d.people) {
		return ErrNoAvailability
	}

	return nil
}
