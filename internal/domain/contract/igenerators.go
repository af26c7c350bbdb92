package contract

type IUUIDGenerator interface {
	NewUUID() string
}

type IRandomGenerator interface {
	GenerateRandomToken(n int) (string, error)
}
