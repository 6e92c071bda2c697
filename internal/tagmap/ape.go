package tagmap

import s "github.com/simonhull/commontags/internal/schema"

// apeTags maps APEv2 item keys. Item keys are case-insensitive.
var apeTags = TagMap{
	"Title":             s.Title,
	"Artist":            s.Artist,
	"Artists":           s.Artists,
	"Album Artist":      s.AlbumArtist,
	"AlbumArtist":       s.AlbumArtist,
	"Album":             s.Album,
	"Year":              s.Date,
	"Originalyear":      s.OriginalYear,
	"Originaldate":      s.OriginalDate,
	"Releasedate":       s.ReleaseDate,
	"Comment":           s.Comment,
	"Track":             s.Track,
	"Disc":              s.Disk,
	"DISCNUMBER":        s.Disk,
	"Genre":             s.Genre,
	"Cover Art (Front)": s.Picture,
	"Cover Art (Back)":  s.Picture,
	"Composer":          s.Composer,
	"Lyrics":            s.Lyrics,
	"ALBUMSORT":         s.AlbumSort,
	"TITLESORT":         s.TitleSort,
	"WORK":              s.Work,
	"ARTISTSORT":        s.ArtistSort,
	"ALBUMARTISTSORT":   s.AlbumArtistSort,
	"COMPOSERSORT":      s.ComposerSort,
	"Lyricist":          s.Lyricist,
	"Writer":            s.Writer,
	"Conductor":         s.Conductor,
	"Performer":         s.PerformerInstrument,
	"MixArtist":         s.Remixer,
	"Arranger":          s.Arranger,
	"Engineer":          s.Engineer,
	"Producer":          s.Producer,
	"DJMixer":           s.DJMixer,
	"Mixer":             s.Mixer,
	"Label":             s.Label,
	"Publisher":         s.Label,
	"Grouping":          s.Grouping,
	"Subtitle":          s.Subtitle,
	"DiscSubtitle":      s.DiscSubtitle,
	"Compilation":       s.Compilation,
	"BPM":               s.BPM,
	"Mood":              s.Mood,
	"Media":             s.Media,
	"CatalogNumber":     s.CatalogNumber,
	"Rating":            s.Rating,
	"Script":            s.Script,
	"Language":          s.Language,
	"Copyright":         s.Copyright,
	"LICENSE":           s.License,
	"EncodedBy":         s.EncodedBy,
	"EncoderSettings":   s.EncoderSettings,
	"Barcode":           s.Barcode,
	"ISRC":              s.ISRC,
	"ASIN":              s.ASIN,
	"Weblink":           s.Website,
	"Key":               s.MusicalKey,
	"Notes":             s.Notes,

	"MUSICBRAINZ_ALBUMSTATUS":    s.ReleaseStatus,
	"MUSICBRAINZ_ALBUMTYPE":      s.ReleaseType,
	"RELEASECOUNTRY":             s.ReleaseCountry,
	"musicbrainz_trackid":        s.MusicBrainzRecordingID,
	"musicbrainz_releasetrackid": s.MusicBrainzTrackID,
	"MUSICBRAINZ_ALBUMID":        s.MusicBrainzAlbumID,
	"MUSICBRAINZ_ARTISTID":       s.MusicBrainzArtistID,
	"MUSICBRAINZ_ALBUMARTISTID":  s.MusicBrainzAlbumArtistID,
	"MUSICBRAINZ_RELEASEGROUPID": s.MusicBrainzReleaseGroupID,
	"MUSICBRAINZ_WORKID":         s.MusicBrainzWorkID,
	"MUSICBRAINZ_TRMID":          s.MusicBrainzTRMID,
	"MUSICBRAINZ_DISCID":         s.MusicBrainzDiscID,
	"ACOUSTID_ID":                s.AcoustIDID,
	"ACOUSTID_FINGERPRINT":       s.AcoustIDFingerprint,
	"MUSICIP_PUID":               s.MusicIPPUID,

	"REPLAYGAIN_TRACK_GAIN": s.ReplayGainTrackGain,
	"REPLAYGAIN_TRACK_PEAK": s.ReplayGainTrackPeak,
	"REPLAYGAIN_ALBUM_GAIN": s.ReplayGainAlbumGain,
	"REPLAYGAIN_ALBUM_PEAK": s.ReplayGainAlbumPeak,
	"MP3GAIN_MINMAX":        s.ReplayGainTrackMinMax,
	"MP3GAIN_ALBUM_MINMAX":  s.ReplayGainAlbumMinMax,
	"MP3GAIN_UNDO":          s.ReplayGainUndo,
}
