package database

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// AffinityCount is one row of the characters-per-affinity breakdown.
type AffinityCount struct {
	Affinity string `json:"affinity"`
	Count    int64  `json:"count"`
}

// RarityCount is one row of the rarity tier distribution.
type RarityCount struct {
	Rarity int   `json:"rarity"`
	Count  int64 `json:"count"`
}

// CatalogStats summarises the catalog contents for the stats endpoint.
type CatalogStats struct {
	Characters      int64           `json:"characters"`
	Attributes      int64           `json:"attributes"`
	Rarities        int64           `json:"rarities"`
	AffinityBonuses int64           `json:"affinityBonuses"`
	Elements        int64           `json:"elements"`
	Personalities   int64           `json:"personalities"`
	ByAffinity      []AffinityCount `json:"byAffinity"`
	ByRarity        []RarityCount   `json:"byRarity"`
}

func countRows(db *sql.DB, table string) (int64, error) {
	sqlStr, args, err := psql.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count SQL for %s: %w", table, err)
	}

	var count int64
	if err := db.QueryRow(sqlStr, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return count, nil
}

func countByAffinity(db *sql.DB) ([]AffinityCount, error) {
	sqlStr, args, err := psql.Select("affinity", "COUNT(*)").
		From("characters").
		GroupBy("affinity").
		OrderBy("affinity ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL for countByAffinity: %w", err)
	}

	rows, err := db.Query(sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute countByAffinity query: %w", err)
	}
	defer rows.Close()

	counts := []AffinityCount{}
	for rows.Next() {
		var c AffinityCount
		if err := rows.Scan(&c.Affinity, &c.Count); err != nil {
			return nil, fmt.Errorf("error scanning affinity count row: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return counts, fmt.Errorf("error iterating affinity count rows: %w", err)
	}
	return counts, nil
}

func countByRarity(db *sql.DB) ([]RarityCount, error) {
	sqlStr, args, err := psql.Select("rarity", "COUNT(*)").
		From("rarities").
		GroupBy("rarity").
		OrderBy("rarity ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL for countByRarity: %w", err)
	}

	rows, err := db.Query(sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute countByRarity query: %w", err)
	}
	defer rows.Close()

	counts := []RarityCount{}
	for rows.Next() {
		var c RarityCount
		if err := rows.Scan(&c.Rarity, &c.Count); err != nil {
			return nil, fmt.Errorf("error scanning rarity count row: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return counts, fmt.Errorf("error iterating rarity count rows: %w", err)
	}
	return counts, nil
}

// GetCatalogStats collects row counts for every character-related table plus
// the affinity and rarity breakdowns in a single pass.
func GetCatalogStats(db *sql.DB) (*CatalogStats, error) {
	stats := &CatalogStats{}

	tables := []struct {
		name string
		dest *int64
	}{
		{"characters", &stats.Characters},
		{"attributes", &stats.Attributes},
		{"rarities", &stats.Rarities},
		{"affinity_bonuses", &stats.AffinityBonuses},
		{"elements", &stats.Elements},
		{"personalities", &stats.Personalities},
	}
	for _, t := range tables {
		count, err := countRows(db, t.name)
		if err != nil {
			return nil, err
		}
		*t.dest = count
	}

	byAffinity, err := countByAffinity(db)
	if err != nil {
		return nil, err
	}
	stats.ByAffinity = byAffinity

	byRarity, err := countByRarity(db)
	if err != nil {
		return nil, err
	}
	stats.ByRarity = byRarity

	return stats, nil
}
