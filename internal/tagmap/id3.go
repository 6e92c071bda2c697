package tagmap

import (
	"maps"

	s "github.com/simonhull/commontags/internal/schema"
)

// id3v1Tags maps the fixed fields of an ID3v1/ID3v1.1 trailer.
var id3v1Tags = TagMap{
	"title":   s.Title,
	"artist":  s.Artist,
	"album":   s.Album,
	"year":    s.Year,
	"comment": s.Comment,
	"track":   s.Track,
	"genre":   s.Genre,
}

// id3v22Tags maps three-character ID3v2.2 frame ids.
var id3v22Tags = TagMap{
	"TT2":          s.Title,
	"TP1":          s.Artist,
	"TP2":          s.AlbumArtist,
	"TAL":          s.Album,
	"TYE":          s.Year,
	"COM":          s.Comment,
	"TRK":          s.Track,
	"TPA":          s.Disk,
	"TCO":          s.Genre,
	"PIC":          s.Picture,
	"TCM":          s.Composer,
	"TOR":          s.OriginalDate,
	"TOT":          s.OriginalAlbum,
	"TOA":          s.OriginalArtist,
	"TXT":          s.Lyricist,
	"TP3":          s.Conductor,
	"TP4":          s.Remixer,
	"TPB":          s.Label,
	"TT1":          s.Grouping,
	"TT3":          s.Subtitle,
	"TLA":          s.Language,
	"TCR":          s.Copyright,
	"WCP":          s.License,
	"TEN":          s.EncodedBy,
	"TSS":          s.EncoderSettings,
	"WAR":          s.Website,
	"ULT":          s.Lyrics,
	"POP":          s.Rating,
	"CNT":          s.PlayCounter,
	"TRC":          s.ISRC,
	"TBP":          s.BPM,
	"TKE":          s.MusicalKey,
	"COM:iTunPGAP": s.Gapless,
	"PCS":          s.Podcast,
	"TCP":          s.Compilation,
	"TDR":          s.Date,
	"TS2":          s.AlbumArtistSort,
	"TSA":          s.AlbumSort,
	"TSC":          s.ComposerSort,
	"TSP":          s.ArtistSort,
	"TST":          s.TitleSort,
	"WFD":          s.PodcastURL,

	"TXX:Artists":                           s.Artists,
	"TXX:MusicBrainz Album Id":              s.MusicBrainzAlbumID,
	"TXX:MusicBrainz Artist Id":             s.MusicBrainzArtistID,
	"TXX:MusicBrainz Album Artist Id":       s.MusicBrainzAlbumArtistID,
	"TXX:MusicBrainz Release Group Id":      s.MusicBrainzReleaseGroupID,
	"TXX:MusicBrainz Release Track Id":      s.MusicBrainzTrackID,
	"TXX:MusicBrainz Album Status":          s.ReleaseStatus,
	"TXX:MusicBrainz Album Type":            s.ReleaseType,
	"TXX:MusicBrainz Album Release Country": s.ReleaseCountry,
	"UFI:http://musicbrainz.org":            s.MusicBrainzRecordingID,
}

// id3v2Common holds the frames ID3v2.3 and ID3v2.4 share. Described frames
// are keyed "FRAME:description"; involved-people lists are keyed
// "FRAME:role".
var id3v2Common = TagMap{
	"TIT2":                        s.Title,
	"TPE1":                        s.Artist,
	"TXXX:Artists":                s.Artists,
	"TPE2":                        s.AlbumArtist,
	"TALB":                        s.Album,
	"TPOS":                        s.Disk,
	"TCON":                        s.Genre,
	"APIC":                        s.Picture,
	"TCOM":                        s.Composer,
	"USLT":                        s.Lyrics,
	"SYLT":                        s.Lyrics,
	"TSOA":                        s.AlbumSort,
	"TSOT":                        s.TitleSort,
	"TOAL":                        s.OriginalAlbum,
	"TOPE":                        s.OriginalArtist,
	"TSOP":                        s.ArtistSort,
	"TSO2":                        s.AlbumArtistSort,
	"TSOC":                        s.ComposerSort,
	"TEXT":                        s.Lyricist,
	"TXXX:Writer":                 s.Writer,
	"TPE3":                        s.Conductor,
	"TPE4":                        s.Remixer,
	"TPUB":                        s.Label,
	"TIT1":                        s.Grouping,
	"GRP1":                        s.Grouping,
	"TIT3":                        s.Subtitle,
	"TSST":                        s.DiscSubtitle,
	"TRCK":                        s.Track,
	"TCMP":                        s.Compilation,
	"POPM":                        s.Rating,
	"PCNT":                        s.PlayCounter,
	"TBPM":                        s.BPM,
	"TKEY":                        s.MusicalKey,
	"TMED":                        s.Media,
	"TLAN":                        s.Language,
	"TCOP":                        s.Copyright,
	"WCOP":                        s.License,
	"TENC":                        s.EncodedBy,
	"TSSE":                        s.EncoderSettings,
	"TSRC":                        s.ISRC,
	"WOAR":                        s.Website,
	"COMM":                        s.Comment,
	"COMM:ID3v1 Comment":          s.Comment,
	"MVNM":                        s.Movement,
	"MVIN":                        s.MovementIndex,
	"PCST":                        s.Podcast,
	"TCAT":                        s.Category,
	"TDES":                        s.Description,
	"TGID":                        s.PodcastID,
	"TKWD":                        s.Keywords,
	"WFED":                        s.PodcastURL,
	"PRIV:AverageLevel":           s.AverageLevel,
	"PRIV:PeakLevel":              s.PeakLevel,
	"UFID:http://musicbrainz.org": s.MusicBrainzRecordingID,

	"TXXX:CATALOGNUMBER":                     s.CatalogNumber,
	"TXXX:BARCODE":                           s.Barcode,
	"TXXX:ISRC":                              s.ISRC,
	"TXXX:ASIN":                              s.ASIN,
	"TXXX:SCRIPT":                            s.Script,
	"TXXX:LICENSE":                           s.License,
	"TXXX:originalyear":                      s.OriginalYear,
	"TXXX:MusicBrainz Album Status":          s.ReleaseStatus,
	"TXXX:MusicBrainz Album Type":            s.ReleaseType,
	"TXXX:MusicBrainz Album Release Country": s.ReleaseCountry,
	"TXXX:MusicBrainz Release Track Id":      s.MusicBrainzTrackID,
	"TXXX:MusicBrainz Album Id":              s.MusicBrainzAlbumID,
	"TXXX:MusicBrainz Artist Id":             s.MusicBrainzArtistID,
	"TXXX:MusicBrainz Album Artist Id":       s.MusicBrainzAlbumArtistID,
	"TXXX:MusicBrainz Release Group Id":      s.MusicBrainzReleaseGroupID,
	"TXXX:MusicBrainz Work Id":               s.MusicBrainzWorkID,
	"TXXX:MusicBrainz TRM Id":                s.MusicBrainzTRMID,
	"TXXX:MusicBrainz Disc Id":               s.MusicBrainzDiscID,
	"TXXX:ACOUSTID_ID":                       s.AcoustIDID,
	"TXXX:Acoustid Id":                       s.AcoustIDID,
	"TXXX:Acoustid Fingerprint":              s.AcoustIDFingerprint,
	"TXXX:MusicIP PUID":                      s.MusicIPPUID,
	"TXXX:MusicMagic Fingerprint":            s.MusicIPFingerprint,
	"TXXX:Work":                              s.Work,

	"TXXX:DISCOGS_ARTIST_ID":         s.DiscogsArtistID,
	"TXXX:DISCOGS_ARTISTS":           s.Artists,
	"TXXX:DISCOGS_ARTIST_NAME":       s.Artists,
	"TXXX:DISCOGS_ALBUM_ARTISTS":     s.AlbumArtist,
	"TXXX:DISCOGS_CATALOG":           s.CatalogNumber,
	"TXXX:DISCOGS_COUNTRY":           s.ReleaseCountry,
	"TXXX:DISCOGS_DATE":              s.OriginalDate,
	"TXXX:DISCOGS_LABEL":             s.Label,
	"TXXX:DISCOGS_LABEL_ID":          s.DiscogsLabelID,
	"TXXX:DISCOGS_MASTER_RELEASE_ID": s.DiscogsMasterReleaseID,
	"TXXX:DISCOGS_RATING":            s.DiscogsRating,
	"TXXX:DISCOGS_RELEASED":          s.Date,
	"TXXX:DISCOGS_RELEASE_ID":        s.DiscogsReleaseID,
	"TXXX:DISCOGS_VOTES":             s.DiscogsVotes,
	"TXXX:CATALOGID":                 s.CatalogNumber,
	"TXXX:STYLE":                     s.Genre,

	"TXXX:REPLAYGAIN_TRACK_PEAK": s.ReplayGainTrackPeak,
	"TXXX:REPLAYGAIN_TRACK_GAIN": s.ReplayGainTrackGain,
	"TXXX:REPLAYGAIN_ALBUM_PEAK": s.ReplayGainAlbumPeak,
	"TXXX:REPLAYGAIN_ALBUM_GAIN": s.ReplayGainAlbumGain,
	"TXXX:MP3GAIN_MINMAX":        s.ReplayGainTrackMinMax,
	"TXXX:MP3GAIN_ALBUM_MINMAX":  s.ReplayGainAlbumMinMax,
	"TXXX:MP3GAIN_UNDO":          s.ReplayGainUndo,
}

// id3v23Only holds frames removed or renamed in ID3v2.4.
var id3v23Only = TagMap{
	"TYER":            s.Year,
	"TORY":            s.OriginalYear,
	"TRDA":            s.Date,
	"IPLS:arranger":   s.Arranger,
	"IPLS:engineer":   s.Engineer,
	"IPLS:producer":   s.Producer,
	"IPLS:DJ-mix":     s.DJMixer,
	"IPLS:mix":        s.Mixer,
	"IPLS:instrument": s.PerformerInstrument,
}

// id3v24Only holds frames introduced by ID3v2.4.
var id3v24Only = TagMap{
	"TDRC":            s.Date,
	"TDRL":            s.ReleaseDate,
	"TDOR":            s.OriginalDate,
	"TMOO":            s.Mood,
	"TIPL:arranger":   s.Arranger,
	"TIPL:engineer":   s.Engineer,
	"TIPL:producer":   s.Producer,
	"TIPL:DJ-mix":     s.DJMixer,
	"TIPL:mix":        s.Mixer,
	"TMCL:instrument": s.PerformerInstrument,
}

// Players write v2.4 frames into v2.3 tags and vice versa, so each version
// accepts the other's frames; its own frames win on conflict.
var (
	id3v23Tags = merged(id3v2Common, id3v24Only, id3v23Only)
	id3v24Tags = merged(id3v2Common, id3v23Only, id3v24Only)
)

func merged(tables ...TagMap) TagMap {
	out := TagMap{}
	for _, t := range tables {
		maps.Copy(out, t)
	}
	return out
}
