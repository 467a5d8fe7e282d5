package jpegls

// quantize maps a prediction error to the near-lossless quantization bin of
// spec §4.7, using a sign-aware floor so reconstruction error never exceeds
// near (a plain truncating division on (error+near) does not hold that
// bound for negative errors).
func quantize(errSigned, near int) int {
	divisor := 2*near + 1
	if errSigned >= 0 {
		return (errSigned + near) / divisor
	}
	return -((-errSigned + near) / divisor)
}

func dequantize(quantized, near int) int {
	return quantized * (2*near + 1)
}

// encodePlane8 predicts and quantizes one 8-bit component plane in
// row-major order, per spec §4.7. The encoder predicts from its own
// reconstruction, not from the original samples: the decoder only ever
// sees reconstructed neighbors, so the encoder has to walk the same causal
// path or the two sides' prediction contexts diverge.
//
// near == 0 is carried as plain byte-wraparound arithmetic rather than
// through quantize/dequantize: a raw prediction error can exceed a signed
// byte's range (e.g. predicting 0 against a true sample of 255), and
// addition modulo 256 inverts exactly regardless of that magnitude. The
// quantizing near > 0 path needs the error's true sign and size to center
// its bins, so it keeps the genuine signed difference and clamps the
// reconstruction into range instead of wrapping it.
func encodePlane8(plane []int, width, height, near int) []byte {
	out := make([]byte, len(plane))
	recon := make([]int, len(plane))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a, b, c := neighbors(recon, width, x, y, 128)
			pred := medPredict(a, b, c, 255)
			sample := plane[y*width+x]
			if near == 0 {
				errByte := byte(sample - pred)
				out[y*width+x] = errByte
				recon[y*width+x] = int(byte(pred + int(int8(errByte))))
				continue
			}
			q := quantize(sample-pred, near)
			out[y*width+x] = byte(int8(q))
			recon[y*width+x] = clamp(pred+dequantize(q, near), 0, 255)
		}
	}
	return out
}

// decodePlane8 reconstructs a component plane from quantized residuals,
// feeding each reconstructed sample back as context for later predictions.
func decodePlane8(residuals []byte, width, height, near int) []int {
	plane := make([]int, len(residuals))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a, b, c := neighbors(plane, width, x, y, 128)
			pred := medPredict(a, b, c, 255)
			if near == 0 {
				plane[y*width+x] = int(byte(pred + int(int8(residuals[y*width+x]))))
				continue
			}
			q := int(int8(residuals[y*width+x]))
			plane[y*width+x] = clamp(pred+dequantize(q, near), 0, 255)
		}
	}
	return plane
}

func encodePlane16(plane []int, width, height, near int) []int {
	out := make([]int, len(plane))
	n := near * 256
	recon := make([]int, len(plane))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a, b, c := neighbors(recon, width, x, y, 32768)
			pred := medPredict(a, b, c, 65535)
			sample := plane[y*width+x]
			if n == 0 {
				errU16 := uint16(sample - pred)
				out[y*width+x] = int(errU16)
				recon[y*width+x] = int(uint16(pred + int(int16(errU16))))
				continue
			}
			q := quantize(sample-pred, n)
			out[y*width+x] = int(uint16(int16(q)))
			recon[y*width+x] = clamp(pred+dequantize(q, n), 0, 65535)
		}
	}
	return out
}

func decodePlane16(residuals []int, width, height, near int) []int {
	plane := make([]int, len(residuals))
	n := near * 256
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a, b, c := neighbors(plane, width, x, y, 32768)
			pred := medPredict(a, b, c, 65535)
			if n == 0 {
				plane[y*width+x] = int(uint16(pred + int(int16(residuals[y*width+x]))))
				continue
			}
			q := int(int16(uint16(residuals[y*width+x])))
			plane[y*width+x] = clamp(pred+dequantize(q, n), 0, 65535)
		}
	}
	return plane
}
