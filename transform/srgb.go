// ocio - color space management for Go
// Copyright (C) 2026  The ocio Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package transform

import (
	"encoding/binary"
	"math"
	"time"
	"unicode/utf16"

	"seehuhn.de/go/icc"
)

// Tag signatures used by the sRGB profile.
const (
	tagWhitePoint icc.TagType = 0x77747074 // "wtpt"
	tagRedXYZ     icc.TagType = 0x7258595A // "rXYZ"
	tagGreenXYZ   icc.TagType = 0x6758595A // "gXYZ"
	tagBlueXYZ    icc.TagType = 0x6258595A // "bXYZ"
	tagRedTRC     icc.TagType = 0x72545243 // "rTRC"
	tagGreenTRC   icc.TagType = 0x67545243 // "gTRC"
	tagBlueTRC    icc.TagType = 0x62545243 // "bTRC"
)

// SRGBProfile returns an sRGB display profile in the given ICC version.
// The colorants are the sRGB primaries adapted to D50, and the tone curves
// are sampled from the sRGB transfer function.  Versions below 4.0 use the
// version 2 encoding of the description tag.
func SRGBProfile(version icc.Version) []byte {
	curve := srgbCurve(1024)
	p := &icc.Profile{
		Version:      version,
		Class:        icc.DisplayDeviceProfile,
		ColorSpace:   icc.RGBSpace,
		PCS:          icc.PCSXYZSpace,
		CreationDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		TagData: map[icc.TagType][]byte{
			tagWhitePoint: xyzTag(0.9642, 1.0, 0.8249),
			tagRedXYZ:     xyzTag(0.4361, 0.2225, 0.0139),
			tagGreenXYZ:   xyzTag(0.3851, 0.7169, 0.0971),
			tagBlueXYZ:    xyzTag(0.1431, 0.0606, 0.7141),
			tagRedTRC:     curve,
			tagGreenTRC:   curve,
			tagBlueTRC:    curve,
		},
	}
	if version >= icc.Version4_0_0 {
		p.TagData[icc.ProfileDescription] = mlucTag("sRGB")
	} else {
		p.TagData[icc.ProfileDescription] = textDescTag("sRGB")
	}
	return p.Encode()
}

// s15Fixed16 converts x to the ICC s15Fixed16Number encoding.
func s15Fixed16(x float64) uint32 {
	return uint32(int32(math.Round(x * 65536)))
}

func xyzTag(x, y, z float64) []byte {
	buf := make([]byte, 20)
	copy(buf, "XYZ ")
	binary.BigEndian.PutUint32(buf[8:], s15Fixed16(x))
	binary.BigEndian.PutUint32(buf[12:], s15Fixed16(y))
	binary.BigEndian.PutUint32(buf[16:], s15Fixed16(z))
	return buf
}

// srgbCurve returns a curveType tag with n samples of the sRGB decoding
// function.
func srgbCurve(n int) []byte {
	buf := make([]byte, 12+2*n)
	copy(buf, "curv")
	binary.BigEndian.PutUint32(buf[8:], uint32(n))
	for i := range n {
		x := float64(i) / float64(n-1)
		var y float64
		if x <= 0.04045 {
			y = x / 12.92
		} else {
			y = math.Pow((x+0.055)/1.055, 2.4)
		}
		binary.BigEndian.PutUint16(buf[12+2*i:], uint16(math.Round(y*65535)))
	}
	return buf
}

// mlucTag returns a multiLocalizedUnicodeType tag with a single en-US
// record.
func mlucTag(s string) []byte {
	text := utf16.Encode([]rune(s))
	buf := make([]byte, 28+2*len(text))
	copy(buf, "mluc")
	binary.BigEndian.PutUint32(buf[8:], 1)  // number of records
	binary.BigEndian.PutUint32(buf[12:], 12) // record size
	copy(buf[16:], "enUS")
	binary.BigEndian.PutUint32(buf[20:], uint32(2*len(text)))
	binary.BigEndian.PutUint32(buf[24:], 28)
	for i, c := range text {
		binary.BigEndian.PutUint16(buf[28+2*i:], c)
	}
	return buf
}

// textDescTag returns a version 2 textDescriptionType tag.  The Unicode
// and ScriptCode parts are left empty.
func textDescTag(s string) []byte {
	n := len(s) + 1
	buf := make([]byte, 12+n+4+4+2+1+67)
	copy(buf, "desc")
	binary.BigEndian.PutUint32(buf[8:], uint32(n))
	copy(buf[12:], s)
	return buf
}
