package jpeg

// JPEG marker codes, ITU-T T.81 table B.1
const (
	markerSOF0  = 0xC0 // Baseline DCT
	markerSOF1  = 0xC1 // Extended Sequential DCT
	markerSOF2  = 0xC2 // Progressive DCT
	markerDHT   = 0xC4 // Define Huffman Table
	markerSOI   = 0xD8 // Start Of Image
	markerEOI   = 0xD9 // End Of Image
	markerSOS   = 0xDA // Start Of Scan
	markerDQT   = 0xDB // Define Quantization Table
	markerDRI   = 0xDD // Define Restart Interval
	markerRST0  = 0xD0 // Restart marker 0
	markerRST7  = 0xD7 // Restart marker 7
	markerAPP0  = 0xE0 // Application Segment 0
	markerAPP15 = 0xEF // Application Segment 15
	markerCOM   = 0xFE // Comment
)
