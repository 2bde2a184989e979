// Package sitecensus inventories a static export of an old church website.
// It classifies the exported HTML pages into bible studies, sermons and
// article series, extracts plain text for date sampling, and can export the
// articles as markdown for migration.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., html/, goquery/, trafilatura/).
package sitecensus
