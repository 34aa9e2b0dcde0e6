package die

import "strconv"

// ResourceKey identifies the image the presentation layer draws for a face.
type ResourceKey string

// Resource keys, one per face.
const (
	FaceOne   ResourceKey = "face-one"
	FaceTwo   ResourceKey = "face-two"
	FaceThree ResourceKey = "face-three"
	FaceFour  ResourceKey = "face-four"
	FaceFive  ResourceKey = "face-five"
	FaceSix   ResourceKey = "face-six"
)

// Face pairs the image key with the text label for a value.
type Face struct {
	Key   ResourceKey
	Label string
}

// ResourceKeyFor maps a face value to its image key.
// Values outside 1..5 map to FaceSix.
func ResourceKeyFor(value int) ResourceKey {
	switch value {
	case 1:
		return FaceOne
	case 2:
		return FaceTwo
	case 3:
		return FaceThree
	case 4:
		return FaceFour
	case 5:
		return FaceFive
	default:
		return FaceSix
	}
}

// Label is the accessibility text for a value: its decimal form.
func Label(value int) string {
	return strconv.Itoa(value)
}

// FaceFor returns the key and label for value.
func FaceFor(value int) Face {
	return Face{Key: ResourceKeyFor(value), Label: Label(value)}
}
