package lastfm

// UnknownArtist is shown whenever an artist name cannot be resolved.
const UnknownArtist = "?"

// imagePreference is the size order BestImageURL walks, largest first.
var imagePreference = []string{"extralarge", "large", "medium", "small"}

// DisplayName returns the record's display title.
func DisplayName(r Record) string {
	return r.Name
}

// ArtistDisplayName resolves a nested artist reference to a non-empty name.
//
// A bare string is used as is. Otherwise the reduced "#text" wins over
// "name" when both are populated, since the reduced shape is what the API
// emits for nested artists. Anything unresolvable becomes UnknownArtist.
func ArtistDisplayName(ref Ref) string {
	if name := refName(ref); name != "" {
		return name
	}
	return UnknownArtist
}

// AlbumName resolves a nested album reference, returning "" when absent.
func AlbumName(ref Ref) string {
	return refName(ref)
}

func refName(ref Ref) string {
	switch ref.Form {
	case RefText:
		return ref.Text
	case RefReduced, RefFull:
		if ref.Text != "" {
			return ref.Text
		}
		return ref.Name
	default:
		return ""
	}
}

// BestImageURL picks one artwork URL by size preference
// (extralarge, large, medium, small), falling back to the first variant
// that has a URL. Variants without a URL never match.
func BestImageURL(images []Image) (string, bool) {
	if len(images) == 0 {
		return "", false
	}
	for _, size := range imagePreference {
		for _, img := range images {
			if img.Size == size && img.URL != "" {
				return img.URL, true
			}
		}
	}
	for _, img := range images {
		if img.URL != "" {
			return img.URL, true
		}
	}
	return "", false
}
