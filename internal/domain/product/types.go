package product

type Status string

const (
	StatusActive    Status = "Active"
	StatusNonActive Status = "Non-Active"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusNonActive:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type Tag string

const (
	TagPromo      Tag = "Promo"
	TagBestSeller Tag = "Best Seller"
	TagNew        Tag = "New"
)

func (t Tag) IsValid() bool {
	switch t {
	case TagPromo, TagBestSeller, TagNew:
		return true
	default:
		return false
	}
}

func NewTags(values []string) ([]Tag, error) {
	tags := make([]Tag, 0, len(values))
	for _, v := range values {
		tag := Tag(v)
		if !tag.IsValid() {
			return nil, ErrInvalidTag
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
