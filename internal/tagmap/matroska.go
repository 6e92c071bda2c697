package tagmap

import s "github.com/simonhull/commontags/internal/schema"

// matroskaTags maps Matroska SimpleTag names, prefixed with the lowercase
// target type they apply to.
var matroskaTags = TagMap{
	"segment:TITLE":                    s.Album,
	"album:ARTIST":                     s.AlbumArtist,
	"album:ARTISTSORT":                 s.AlbumArtistSort,
	"album:TITLE":                      s.Album,
	"album:DATE_RECORDED":              s.OriginalDate,
	"album:DATE_RELEASED":              s.ReleaseDate,
	"album:PART_NUMBER":                s.Disk,
	"album:TOTAL_PARTS":                s.TotalTracks,
	"album:LABEL":                      s.Label,
	"album:CATALOG_NUMBER":             s.CatalogNumber,
	"album:BARCODE":                    s.Barcode,
	"album:MUSICBRAINZ_ALBUMID":        s.MusicBrainzAlbumID,
	"album:MUSICBRAINZ_ALBUMARTISTID":  s.MusicBrainzAlbumArtistID,
	"album:MUSICBRAINZ_RELEASEGROUPID": s.MusicBrainzReleaseGroupID,
	"edition:TOTAL_PARTS":              s.TotalDiscs,
	"track:ARTIST":                     s.Artist,
	"track:ARTISTSORT":                 s.ArtistSort,
	"track:TITLE":                      s.Title,
	"track:TITLESORT":                  s.TitleSort,
	"track:PART_NUMBER":                s.Track,
	"track:GENRE":                      s.Genre,
	"track:COMPOSER":                   s.Composer,
	"track:LYRICS":                     s.Lyrics,
	"track:LYRICIST":                   s.Lyricist,
	"track:CONDUCTOR":                  s.Conductor,
	"track:REMIXED_BY":                 s.Remixer,
	"track:ARRANGER":                   s.Arranger,
	"track:PRODUCER":                   s.Producer,
	"track:MIXED_BY":                   s.Mixer,
	"track:COMMENT":                    s.Comment,
	"track:BPM":                        s.BPM,
	"track:MOOD":                       s.Mood,
	"track:ISRC":                       s.ISRC,
	"track:COPYRIGHT":                  s.Copyright,
	"track:DATE_RELEASED":              s.Date,
	"track:ENCODER":                    s.EncodedBy,
	"track:ENCODER_SETTINGS":           s.EncoderSettings,
	"track:MUSICBRAINZ_TRACKID":        s.MusicBrainzRecordingID,
	"track:MUSICBRAINZ_RELEASETRACKID": s.MusicBrainzTrackID,
	"track:MUSICBRAINZ_ARTISTID":       s.MusicBrainzArtistID,
	"track:MUSICBRAINZ_WORKID":         s.MusicBrainzWorkID,
	"track:REPLAYGAIN_GAIN":            s.ReplayGainTrackGain,
	"track:REPLAYGAIN_PEAK":            s.ReplayGainTrackPeak,
	"album:REPLAYGAIN_GAIN":            s.ReplayGainAlbumGain,
	"album:REPLAYGAIN_PEAK":            s.ReplayGainAlbumPeak,
	"picture":                          s.Picture,
}
