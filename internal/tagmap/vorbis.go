package tagmap

import s "github.com/simonhull/commontags/internal/schema"

// vorbisTags maps Vorbis comment field names (also used by FLAC and Opus).
// Field names are case-insensitive.
// See https://picard-docs.musicbrainz.org/downloads/MusicBrainz_Picard_Tag_Map.html
var vorbisTags = TagMap{
	"TITLE":                  s.Title,
	"ARTIST":                 s.Artist,
	"ARTISTS":                s.Artists,
	"ALBUMARTIST":            s.AlbumArtist,
	"ALBUM ARTIST":           s.AlbumArtist,
	"ALBUM":                  s.Album,
	"DATE":                   s.Date,
	"YEAR":                   s.Year,
	"ORIGINALDATE":           s.OriginalDate,
	"ORIGINALYEAR":           s.OriginalYear,
	"RELEASEDATE":            s.ReleaseDate,
	"COMMENT":                s.Comment,
	"DESCRIPTION":            s.Description,
	"TRACKNUMBER":            s.Track,
	"DISCNUMBER":             s.Disk,
	"TRACKTOTAL":             s.TotalTracks,
	"TOTALTRACKS":            s.TotalTracks,
	"DISCTOTAL":              s.TotalDiscs,
	"TOTALDISCS":             s.TotalDiscs,
	"GENRE":                  s.Genre,
	"STYLE":                  s.Genre,
	"METADATA_BLOCK_PICTURE": s.Picture,
	"COVERART":               s.Picture,
	"COMPOSER":               s.Composer,
	"LYRICS":                 s.Lyrics,
	"UNSYNCEDLYRICS":         s.Lyrics,
	"ALBUMSORT":              s.AlbumSort,
	"TITLESORT":              s.TitleSort,
	"WORK":                   s.Work,
	"ARTISTSORT":             s.ArtistSort,
	"ALBUMARTISTSORT":        s.AlbumArtistSort,
	"COMPOSERSORT":           s.ComposerSort,
	"LYRICIST":               s.Lyricist,
	"WRITER":                 s.Writer,
	"CONDUCTOR":              s.Conductor,
	"PERFORMER":              s.PerformerInstrument,
	"REMIXER":                s.Remixer,
	"ARRANGER":               s.Arranger,
	"ENGINEER":               s.Engineer,
	"PRODUCER":               s.Producer,
	"DJMIXER":                s.DJMixer,
	"MIXER":                  s.Mixer,
	"LABEL":                  s.Label,
	"ORGANIZATION":           s.Label,
	"GROUPING":               s.Grouping,
	"SUBTITLE":               s.Subtitle,
	"DISCSUBTITLE":           s.DiscSubtitle,
	"COMPILATION":            s.Compilation,
	"RATING":                 s.Rating,
	"BPM":                    s.BPM,
	"KEY":                    s.MusicalKey,
	"MOOD":                   s.Mood,
	"MEDIA":                  s.Media,
	"CATALOGNUMBER":          s.CatalogNumber,
	"RELEASESTATUS":          s.ReleaseStatus,
	"RELEASETYPE":            s.ReleaseType,
	"RELEASECOUNTRY":         s.ReleaseCountry,
	"SCRIPT":                 s.Script,
	"LANGUAGE":               s.Language,
	"COPYRIGHT":              s.Copyright,
	"LICENSE":                s.License,
	"ENCODEDBY":              s.EncodedBy,
	"ENCODERSETTINGS":        s.EncoderSettings,
	"BARCODE":                s.Barcode,
	"ISRC":                   s.ISRC,
	"ASIN":                   s.ASIN,
	"WEBSITE":                s.Website,
	"NOTES":                  s.Notes,
	"ORIGINALARTIST":         s.OriginalArtist,
	"ORIGINALALBUM":          s.OriginalAlbum,

	"MUSICBRAINZ_TRACKID":        s.MusicBrainzRecordingID,
	"MUSICBRAINZ_RELEASETRACKID": s.MusicBrainzTrackID,
	"MUSICBRAINZ_ALBUMID":        s.MusicBrainzAlbumID,
	"MUSICBRAINZ_ARTISTID":       s.MusicBrainzArtistID,
	"MUSICBRAINZ_ALBUMARTISTID":  s.MusicBrainzAlbumArtistID,
	"MUSICBRAINZ_RELEASEGROUPID": s.MusicBrainzReleaseGroupID,
	"MUSICBRAINZ_WORKID":         s.MusicBrainzWorkID,
	"MUSICBRAINZ_TRMID":          s.MusicBrainzTRMID,
	"MUSICBRAINZ_DISCID":         s.MusicBrainzDiscID,
	"ACOUSTID_ID":                s.AcoustIDID,
	"ACOUSTID_ID_FINGERPRINT":    s.AcoustIDFingerprint,
	"ACOUSTID_FINGERPRINT":       s.AcoustIDFingerprint,
	"MUSICIP_PUID":               s.MusicIPPUID,
	"FINGERPRINT":                s.MusicIPFingerprint,

	"DISCOGS_ARTIST_ID":         s.DiscogsArtistID,
	"DISCOGS_ARTISTS":           s.Artists,
	"DISCOGS_ARTIST_NAME":       s.Artists,
	"DISCOGS_ALBUM_ARTISTS":     s.AlbumArtist,
	"DISCOGS_CATALOG":           s.CatalogNumber,
	"DISCOGS_COUNTRY":           s.ReleaseCountry,
	"DISCOGS_DATE":              s.OriginalDate,
	"DISCOGS_LABEL":             s.Label,
	"DISCOGS_LABEL_ID":          s.DiscogsLabelID,
	"DISCOGS_MASTER_RELEASE_ID": s.DiscogsMasterReleaseID,
	"DISCOGS_RATING":            s.DiscogsRating,
	"DISCOGS_RELEASED":          s.Date,
	"DISCOGS_RELEASE_ID":        s.DiscogsReleaseID,
	"DISCOGS_VOTES":             s.DiscogsVotes,
	"CATALOGID":                 s.CatalogNumber,

	"REPLAYGAIN_TRACK_GAIN":   s.ReplayGainTrackGain,
	"REPLAYGAIN_TRACK_PEAK":   s.ReplayGainTrackPeak,
	"REPLAYGAIN_ALBUM_GAIN":   s.ReplayGainAlbumGain,
	"REPLAYGAIN_ALBUM_PEAK":   s.ReplayGainAlbumPeak,
	"REPLAYGAIN_UNDO":         s.ReplayGainUndo,
	"REPLAYGAIN_TRACK_MINMAX": s.ReplayGainTrackMinMax,
	"REPLAYGAIN_ALBUM_MINMAX": s.ReplayGainAlbumMinMax,
}
