package entry

// Names holds human-readable names of the tags known to this package.
// Some numeric IDs are reused across directories (e.g. GPSLatitudeRef and InteropIndex);
// use NameIn to resolve them against the directory they were found in.
var Names = map[ID]string{
	ImageWidth:         "ImageWidth",
	ImageHeight:        "ImageHeight",
	BitsPerSample:      "BitsPerSample",
	Compression:        "Compression",
	ImageDescription:   "ImageDescription",
	Make:               "Make",
	Model:              "Model",
	Orientation:        "Orientation",
	XResolution:        "XResolution",
	YResolution:        "YResolution",
	ResolutionUnit:     "ResolutionUnit",
	Software:           "Software",
	ModifyDate:         "ModifyDate",
	Exif:               "ExifIFDPointer",
	GPSInfo:            "GPSInfoIFDPointer",
	ExposureTime:       "ExposureTime",
	FNumber:            "FNumber",
	ISO:                "ISO",
	ExifVersion:        "ExifVersion",
	DateTimeOriginal:   "DateTimeOriginal",
	OffsetTimeOriginal: "OffsetTimeOriginal",
	MakerNote:          "MakerNote",
	UserComment:        "UserComment",
	Interoperability:   "InteroperabilityIFDPointer",
	ThumbnailOffset:    "ThumbnailOffset",
	ThumbnailLength:    "ThumbnailLength",
}

var gpsNames = map[ID]string{
	GPSVersionID:    "GPSVersionID",
	GPSLatitudeRef:  "GPSLatitudeRef",
	GPSLatitude:     "GPSLatitude",
	GPSLongitudeRef: "GPSLongitudeRef",
	GPSLongitude:    "GPSLongitude",
	GPSAltitudeRef:  "GPSAltitudeRef",
	GPSAltitude:     "GPSAltitude",
}

var interopNames = map[ID]string{
	InteropIndex: "InteropIndex",
}

// NameIn returns the name of id as found in the directory reached through pointer (0 for a top-level directory).
func NameIn(pointer ID, id ID) (string, bool) {
	var names map[ID]string
	switch pointer {
	case GPSInfo:
		names = gpsNames
	case Interoperability:
		names = interopNames
	default:
		names = Names
	}
	name, ok := names[id]
	return name, ok
}
