package subset

// Golden ratio bit mixer.
const PHI_C64 = uint64(0x9e3779b97f4a7c15)

func mix(key int) uint64 {
	return uint64(mix32(key))
}

// Final mixing step of 32-bit MurmurHash3.
func mix32(v int) uint32 {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return k ^ (k >> 16)
}

// mixPhi spreads h over all 64 bits before it is masked to a bucket index.
func mixPhi(h uint64) uint64 {
	h *= PHI_C64
	return h ^ (h >> 32)
}
