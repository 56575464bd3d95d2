package repository

//go:generate go run go.uber.org/mock/mockgen -source=querier.go -destination=../mock/querier_mock.go -package=mock github.com/savioruz/kickmatch/internal/domains/venues/repository Querier
