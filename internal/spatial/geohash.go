package spatial

// Base32 alphabet used by geohash
const base32 = "0123456789bcdefghjkmnpqrstuvwxyz"

// CachePrecision is the geohash length used for distance cache keys (~4m cells)
const CachePrecision = 9

// EncodeGeohash encodes a point into a geohash string.
// precision is clamped to 1..12 characters.
func EncodeGeohash(p Point, precision int) string {
	if precision < 1 {
		precision = 1
	}
	if precision > 12 {
		precision = 12
	}

	latLo, latHi := -90.0, 90.0
	lonLo, lonHi := -180.0, 180.0

	out := make([]byte, 0, precision)
	evenBit := true
	bits, ch := 0, 0

	for len(out) < precision {
		if evenBit {
			mid := (lonLo + lonHi) / 2
			if p.Lon > mid {
				ch |= 1 << (4 - bits)
				lonLo = mid
			} else {
				lonHi = mid
			}
		} else {
			mid := (latLo + latHi) / 2
			if p.Lat > mid {
				ch |= 1 << (4 - bits)
				latLo = mid
			} else {
				latHi = mid
			}
		}
		evenBit = !evenBit

		bits++
		if bits == 5 {
			out = append(out, base32[ch])
			bits, ch = 0, 0
		}
	}

	return string(out)
}
