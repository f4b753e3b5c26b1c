package ipv4

// Named literal ranges every family must carry (see SPEC_FULL.md §6.A).
var (
	ThisNet                = NewPrefix(AddressFromBytes(0, 0, 0, 0), 8)
	LoopbackNet            = NewPrefix(AddressFromBytes(127, 0, 0, 0), 8)
	LinkLocalNet           = NewPrefix(AddressFromBytes(169, 254, 0, 0), 16)
	MulticastNet           = NewPrefix(AddressFromBytes(224, 0, 0, 0), 4)
	BenchmarkNet           = NewPrefix(AddressFromBytes(198, 18, 0, 0), 15)
	SharedNet              = NewPrefix(AddressFromBytes(100, 64, 0, 0), 10)
	ProtocolAssignmentsNet = NewPrefix(AddressFromBytes(192, 0, 0, 0), 24)

	DocumentationNets = []Prefix{
		NewPrefix(AddressFromBytes(192, 0, 2, 0), 24),
		NewPrefix(AddressFromBytes(198, 51, 100, 0), 24),
		NewPrefix(AddressFromBytes(203, 0, 113, 0), 24),
	}

	PrivateNets = []Prefix{
		NewPrefix(AddressFromBytes(10, 0, 0, 0), 8),
		NewPrefix(AddressFromBytes(172, 16, 0, 0), 12),
		NewPrefix(AddressFromBytes(192, 168, 0, 0), 16),
	}
)
