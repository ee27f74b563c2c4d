package domain

// Extra is an add-on that products can reference, e.g. a topping or a side.
type Extra struct {
	id          ExtraID
	name        ExtraName
	description Description
	price       Price
	metadata    Metadata
}

// NewExtra mints an extra with a fresh id and metadata.
func NewExtra(name ExtraName, description Description, price Price) Extra {
	return Extra{
		id:          NewExtraID(),
		name:        name,
		description: description,
		price:       price,
		metadata:    NewMetadata(),
	}
}

// ExtraConfig rehydrates an Extra from storage.
type ExtraConfig struct {
	ID          ExtraID
	Name        ExtraName
	Description Description
	Price       Price
	Metadata    Metadata
}

func ExtraFromConfig(cfg ExtraConfig) Extra {
	return Extra{
		id:          cfg.ID,
		name:        cfg.Name,
		description: cfg.Description,
		price:       cfg.Price,
		metadata:    cfg.Metadata,
	}
}

func (e Extra) ID() ExtraID              { return e.id }
func (e Extra) Name() ExtraName          { return e.name }
func (e Extra) Description() Description { return e.description }
func (e Extra) Price() Price             { return e.price }
func (e Extra) Metadata() Metadata       { return e.metadata }

// Setter starts a mutation of the extra. Commit returns the updated copy
// with a bumped metadata timestamp.
func (e Extra) Setter() *ExtraSetter {
	return &ExtraSetter{extra: e}
}

type ExtraSetter struct {
	extra Extra
}

func (s *ExtraSetter) Name(name ExtraName) *ExtraSetter {
	s.extra.name = name

	return s
}

func (s *ExtraSetter) Description(description Description) *ExtraSetter {
	s.extra.description = description

	return s
}

func (s *ExtraSetter) Price(price Price) *ExtraSetter {
	s.extra.price = price

	return s
}

func (s *ExtraSetter) Commit() Extra {
	s.extra.metadata = s.extra.metadata.Updated()

	return s.extra
}
