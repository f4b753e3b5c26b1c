package ipv6

// Named literal ranges every family must carry (see SPEC_FULL.md §6.A).
var (
	LinkLocalNet     = NewPrefix(AddressFromUint64(0xfe80000000000000, 0), 10)
	MulticastNet     = NewPrefix(AddressFromUint64(0xff00000000000000, 0), 8)
	UniqueLocalNet   = NewPrefix(AddressFromUint64(0xfc00000000000000, 0), 7)
	DocumentationNet = NewPrefix(AddressFromUint64(0x20010db800000000, 0), 32)
	IPv4MappedNet    = NewPrefix(AddressFromUint64(0, 0x0000ffff00000000), 96)
	GlobalUnicastNet = NewPrefix(AddressFromUint64(0x2000000000000000, 0), 3)
)
