package mysql

const getSettingSQL = `
SELECT value
FROM settings
WHERE name = ?
`

// Use VALUES(col) for broad compatibility.
const upsertSettingSQL = `
INSERT INTO settings (name, value)
VALUES (?, ?)
ON DUPLICATE KEY UPDATE
  value      = VALUES(value),
  updated_at = CURRENT_TIMESTAMP
`

const deleteSettingSQL = `
DELETE FROM settings
WHERE name = ?
`
