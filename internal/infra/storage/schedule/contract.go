package schedule

import "github.com/LeandroKolesny/Aura-System-sub000/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
