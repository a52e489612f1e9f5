package bigdec

// Digits is the set of digit buffers an Int can be instantiated with. The
// length of the array is the maximum number of decimal digits, K, the Int
// can hold. There is no zero-length member, so an Int always has room for
// at least one digit.
//
// Any array type with one of these shapes is accepted, including named
// types:
//
//	type Digits30 [30]uint8
//	var x bigdec.Int[Digits30]
//
// Only the lengths listed here are available: every K from 1 to 64, then
// 72, 80, 96, 100, 128, 160, 192, 200, 256, 320, 384, 500, 512, 768, 1000,
// 1024, 2048, 4096 and 8192. Any other length, such as 65 or 1001, does not
// satisfy Digits and needs a new member added to this list. Round up to the
// next listed length when in doubt.
type Digits interface {
	~[1]uint8 | ~[2]uint8 | ~[3]uint8 | ~[4]uint8 | ~[5]uint8 | ~[6]uint8 |
		~[7]uint8 | ~[8]uint8 | ~[9]uint8 | ~[10]uint8 | ~[11]uint8 |
		~[12]uint8 | ~[13]uint8 | ~[14]uint8 | ~[15]uint8 | ~[16]uint8 |
		~[17]uint8 | ~[18]uint8 | ~[19]uint8 | ~[20]uint8 | ~[21]uint8 |
		~[22]uint8 | ~[23]uint8 | ~[24]uint8 | ~[25]uint8 | ~[26]uint8 |
		~[27]uint8 | ~[28]uint8 | ~[29]uint8 | ~[30]uint8 | ~[31]uint8 |
		~[32]uint8 | ~[33]uint8 | ~[34]uint8 | ~[35]uint8 | ~[36]uint8 |
		~[37]uint8 | ~[38]uint8 | ~[39]uint8 | ~[40]uint8 | ~[41]uint8 |
		~[42]uint8 | ~[43]uint8 | ~[44]uint8 | ~[45]uint8 | ~[46]uint8 |
		~[47]uint8 | ~[48]uint8 | ~[49]uint8 | ~[50]uint8 | ~[51]uint8 |
		~[52]uint8 | ~[53]uint8 | ~[54]uint8 | ~[55]uint8 | ~[56]uint8 |
		~[57]uint8 | ~[58]uint8 | ~[59]uint8 | ~[60]uint8 | ~[61]uint8 |
		~[62]uint8 | ~[63]uint8 | ~[64]uint8 | ~[72]uint8 | ~[80]uint8 |
		~[96]uint8 | ~[100]uint8 | ~[128]uint8 | ~[160]uint8 | ~[192]uint8 |
		~[200]uint8 | ~[256]uint8 | ~[320]uint8 | ~[384]uint8 | ~[500]uint8 |
		~[512]uint8 | ~[768]uint8 | ~[1000]uint8 | ~[1024]uint8 | ~[2048]uint8 |
		~[4096]uint8 | ~[8192]uint8
}
